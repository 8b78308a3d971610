package arc_test

import "github.com/cockroachdb/errors"

var errTorn = errors.New("upgraded handle observed a torn payload")
