package listprint

import (
	"io"
	"log"
	"os"
)

const defaultSeparator = " "

// Option опция вывода.
type Option func(p *printer, _ optionRestriction)

type optionRestriction struct{}

// WithWriter задание приёмника вывода. По-умолчанию os.Stdout,
// причём берётся его значение на момент вывода.
func WithWriter(w io.Writer) Option {
	return func(p *printer, _ optionRestriction) {
		p.w = w
	}
}

// WithSeparator задание разделителя значений. По-умолчанию пробел.
func WithSeparator(sep string) Option {
	return func(p *printer, _ optionRestriction) {
		p.sep = sep
	}
}

// WithLogger задание логгера ошибок записи.
func WithLogger(logger func(err error)) Option {
	return func(p *printer, _ optionRestriction) {
		p.logger = logger
	}
}

type printer struct {
	w      io.Writer
	sep    string
	logger func(err error)
}

func newPrinter(opts []Option) *printer {
	p := &printer{
		sep:    defaultSeparator,
		logger: defaultLogger,
	}
	for _, opt := range opts {
		opt(p, optionRestriction{})
	}

	return p
}

func (p *printer) dst() io.Writer {
	if p.w == nil {
		return os.Stdout
	}

	return p.w
}

func defaultLogger(err error) {
	log.Println(err)
}
