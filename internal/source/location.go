package source

import "fmt"

// Location is a point in source text. Row and Column are 0-based and count
// from whatever start the caller handed to the scanner; Path is empty for
// input that did not come from a file.
//
// Locations compare by value: two locations are equal iff row, column and
// path all match.
type Location struct {
	Row    int
	Column int
	Path   string
}

// At returns a pathless location at the given row and column.
func At(row, column int) Location {
	return Location{Row: row, Column: column}
}

// StartOfFile returns the (0,0) location of the given file.
func StartOfFile(path string) Location {
	return Location{Path: path}
}

func (l Location) String() string {
	if l.Path != "" {
		return fmt.Sprintf("%s:%d:%d", l.Path, l.Row, l.Column)
	}
	return fmt.Sprintf("%d:%d", l.Row, l.Column)
}
