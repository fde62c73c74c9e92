package diag

import (
	"lexkit/internal/source"
)

type Note struct {
	Loc source.Location
	Msg string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Loc      source.Location
	Notes    []Note
}

func New(sev Severity, code Code, loc source.Location, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Loc:      loc,
		Message:  msg,
	}
}

func NewError(code Code, loc source.Location, msg string) Diagnostic {
	return New(SevError, code, loc, msg)
}

func (d Diagnostic) WithNote(loc source.Location, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Loc: loc, Msg: msg})
	return d
}
