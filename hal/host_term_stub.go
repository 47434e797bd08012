//go:build !tinygo && !unix

package hal

import (
	"context"
	"errors"
)

type TermKeys struct{}

func NewTermKeys(*hostInput) *TermKeys { return &TermKeys{} }

func (k *TermKeys) Start(int) error {
	return errors.New("term keys: raw terminal input is only supported on unix")
}

func (k *TermKeys) WithQuit(parent context.Context) context.Context { return parent }

func (k *TermKeys) Stop() {}
