package elevation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/distantorigin/edge-profile/internal/validate"
)

var _ validate.PrivilegeChecker = Checker{}

func TestChecker_IsElevated(t *testing.T) {
	elevated, err := Checker{}.IsElevated()
	assert.NoError(t, err)
	t.Logf("IsElevated() = %v", elevated)
}
