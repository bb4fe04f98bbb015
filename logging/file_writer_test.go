package logging

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyFileWriterDefaults(t *testing.T) {
	tests := []struct {
		name  string
		input FileWriterConfig
		want  FileWriterConfig
	}{
		{
			name:  "zero values",
			input: FileWriterConfig{},
			want:  FileWriterConfig{MaxSizeMB: DefaultMaxSizeMB, MaxBackups: DefaultMaxBackups, MaxAgeDays: DefaultMaxAgeDays},
		},
		{
			name:  "custom values kept",
			input: FileWriterConfig{MaxSizeMB: 5, MaxBackups: 1, MaxAgeDays: 2, Compress: true},
			want:  FileWriterConfig{MaxSizeMB: 5, MaxBackups: 1, MaxAgeDays: 2, Compress: true},
		},
		{
			name:  "negative values",
			input: FileWriterConfig{MaxSizeMB: -1, MaxBackups: -1, MaxAgeDays: -1},
			want:  FileWriterConfig{MaxSizeMB: DefaultMaxSizeMB, MaxBackups: DefaultMaxBackups, MaxAgeDays: DefaultMaxAgeDays},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := applyFileWriterDefaults(tt.input); got != tt.want {
				t.Errorf("applyFileWriterDefaults() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewFileWriter_CreatesFileOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rotating.log")
	w := NewFileWriter(path)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file exists before first write: %v", err)
	}

	if _, err := w.Write([]byte("entry\n")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := w.Sync(); err != nil {
		t.Fatalf("Sync() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != "entry\n" {
		t.Errorf("file content = %q, want %q", data, "entry\n")
	}
}
