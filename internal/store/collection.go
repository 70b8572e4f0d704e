package store

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// collection holds the in-memory working copy of one persisted collection.
// It is not safe for concurrent use on its own; Store serializes access.
type collection[T any] struct {
	gw       fileGateway
	file     string
	defaults func() T
	value    T
}

func newCollection[T any](gw fileGateway, file string, defaults func() T) collection[T] {
	return collection[T]{gw: gw, file: file, defaults: defaults}
}

// load reads the backing file into memory. On any read or parse failure
// (including a missing file on first run) the collection is reset to its
// defaults and the defaults are written back immediately, so memory and
// disk never disagree after load returns nil.
func (c *collection[T]) load() error {
	var v T
	if err := c.gw.read(c.file, &v); err != nil {
		log.Warn().Err(err).Str("file", c.file).Msg("store: collection unreadable, resetting to defaults")
		c.value = c.defaults()
		if perr := c.persist(); perr != nil {
			return fmt.Errorf("store: recover %s: %w", c.file, perr)
		}
		return nil
	}
	c.value = v
	return nil
}

// persist writes the current in-memory value, fully replacing the file.
func (c *collection[T]) persist() error {
	if err := c.gw.write(c.file, c.value); err != nil {
		log.Error().Err(err).Str("file", c.file).Msg("store: collection write failed")
		return fmt.Errorf("%s: %w", c.file, ErrPersist)
	}
	return nil
}
