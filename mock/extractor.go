package mock

import (
	urldoc "github.com/msaum/url-doc-to-markdown"
)

var _ urldoc.Extractor = (*Extractor)(nil)

type Extractor struct {
	ExtractFn func(rawHTML string) (*urldoc.ExtractResult, error)
}

func (e *Extractor) Extract(rawHTML string) (*urldoc.ExtractResult, error) {
	return e.ExtractFn(rawHTML)
}

var _ urldoc.MetaScanner = (*MetaScanner)(nil)

type MetaScanner struct {
	ScanFn func(rawHTML string) (*urldoc.Meta, error)
}

func (s *MetaScanner) Scan(rawHTML string) (*urldoc.Meta, error) {
	return s.ScanFn(rawHTML)
}
