package presenter

import (
	"errors"

	"github.com/soocke/spot-marker-go/domain/zone"
)

func isSaveFailure(err error) bool {
	var pe *zone.PersistenceError
	return errors.As(err, &pe)
}
