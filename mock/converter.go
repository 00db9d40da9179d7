package mock

import (
	urldoc "github.com/msaum/url-doc-to-markdown"
)

var _ urldoc.Converter = (*Converter)(nil)

type Converter struct {
	ConvertFn func(contentHTML string) (string, error)
}

func (c *Converter) Convert(contentHTML string) (string, error) {
	return c.ConvertFn(contentHTML)
}
