package report

import "errors"

// Multi fans a summary out to several writers. A failing writer does
// not prevent delivery to the rest; errors are joined.
type Multi struct {
	writers []Writer
}

// NewMulti creates a Multi over the given writers.
func NewMulti(writers ...Writer) *Multi {
	return &Multi{writers: writers}
}

func (m *Multi) Write(s Summary) error {
	var errs []error
	for _, w := range m.writers {
		if err := w.Write(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Multi) Close() error {
	var errs []error
	for _, w := range m.writers {
		if err := w.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
