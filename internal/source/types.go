package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single source file.
// Content is already BOM-stripped and CRLF-normalized.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// Start returns the location of the first character of the file.
func (f *File) Start() Location {
	return StartOfFile(f.Path)
}

// Line returns the text of the 0-based row, without its trailing newline.
// Rows past the end of the file yield an empty string.
func (f *File) Line(row int) string {
	if row < 0 {
		return ""
	}

	var start uint32
	if row > 0 {
		if row-1 >= len(f.LineIdx) {
			return ""
		}
		start = f.LineIdx[row-1] + 1
	}

	end := uint32(len(f.Content))
	if row < len(f.LineIdx) {
		end = f.LineIdx[row]
	}

	if start > end {
		return ""
	}
	return string(f.Content[start:end])
}
