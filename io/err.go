package io

import (
	"errors"

	"github.com/ezrec/vmma/translate"
)

var f = translate.From

var (
	// Console errors
	ErrNoInput = errors.New(f("console has no input"))
)
