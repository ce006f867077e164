//go:build unit

package commands_test

import "gaming-zone-booking/internal/pkg/errs"

var assertErr = errs.New("boom")
