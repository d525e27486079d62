// Package idgen issues 63-bit, time-ordered entity ids using sonyflake.
package idgen

import (
	"errors"
	"fmt"

	"github.com/sony/sonyflake"
)

// ErrSettings is returned when sonyflake rejects the generator settings.
var ErrSettings = errors.New("idgen: invalid sonyflake settings")

// Generator hands out unique ids for one process. Each replica sharing a
// database must use a distinct machine id.
type Generator struct {
	sf *sonyflake.Sonyflake
}

// New returns a Generator stamped with machineID.
func New(machineID uint16) (*Generator, error) {
	sf := sonyflake.NewSonyflake(sonyflake.Settings{
		MachineID: func() (uint16, error) { return machineID, nil },
	})
	if sf == nil {
		return nil, ErrSettings
	}
	return &Generator{sf: sf}, nil
}

// NextID returns the next id. It fails only once the sonyflake clock range
// is exhausted.
func (g *Generator) NextID() (int64, error) {
	id, err := g.sf.NextID()
	if err != nil {
		return 0, fmt.Errorf("next id: %w", err)
	}
	return int64(id), nil
}
