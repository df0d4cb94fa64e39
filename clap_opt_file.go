package clap

import (
	"os"
	"path/filepath"

	"golang.org/x/text/language"
)

// FileExistence selects which filesystem-path values a FileOption accepts
// based on whether the path exists.
type FileExistence int

const (
	AcceptAnyExistence FileExistence = iota
	AcceptExisting
	AcceptNonExisting
)

// FileKind selects which filesystem-path values a FileOption accepts based
// on whether the path names a file or a directory.
type FileKind int

const (
	AcceptAnyKind FileKind = iota
	AcceptFile
	AcceptDir
)

// FileOption accepts filesystem paths. Values are stored in canonical
// (absolute, cleaned) form.
type FileOption struct {
	Option[string]
	existence FileExistence
	kind      FileKind
}

func NewFile(short string) *FileOption {
	return &FileOption{Option: newOption[string](short, true)}
}

func (o *FileOption) SetLong(l string) *FileOption {
	o.long = l
	return o
}

func (o *FileOption) SetUsage(u string) *FileOption {
	o.description = u
	return o
}

func (o *FileOption) SetMandatory(b bool) *FileOption {
	o.setMandatory(b)
	return o
}

func (o *FileOption) SetAllowMany(b bool) *FileOption {
	o.setAllowMany(b)
	return o
}

func (o *FileOption) SetMinMax(minCount, maxCount int) *FileOption {
	o.minCount = minCount
	o.maxCount = maxCount
	return o
}

func (o *FileOption) SetHidden(b bool) *FileOption {
	o.hidden = b
	return o
}

// SetFilter constrains accepted paths by existence and kind.
func (o *FileOption) SetFilter(existence FileExistence, kind FileKind) *FileOption {
	o.existence = existence
	o.kind = kind
	return o
}

func (o *FileOption) Register(p *Parser) (*FileOption, error) {
	return o, p.register(o)
}

func (o *FileOption) assign(raw string, loc language.Tag) error {
	path, err := filepath.Abs(raw)
	if err != nil {
		return o.illegalValue(raw, err)
	}
	if err := o.accept(path); err != nil {
		return err
	}
	return o.add(path)
}

func (o *FileOption) accept(path string) error {
	info, statErr := os.Stat(path)
	exists := statErr == nil

	switch o.existence {
	case AcceptExisting:
		if !exists {
			return newParseError(ErrIllegalValue, o.displayName(), path)
		}
	case AcceptNonExisting:
		if exists {
			return newParseError(ErrIllegalValue, o.displayName(), path)
		}
	}

	if exists {
		switch o.kind {
		case AcceptFile:
			if info.IsDir() {
				return newParseError(ErrIllegalValue, o.displayName(), path)
			}
		case AcceptDir:
			if !info.IsDir() {
				return newParseError(ErrIllegalValue, o.displayName(), path)
			}
		}
	}
	return nil
}
