package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCleanupNotificationsCommand_ValidInput(t *testing.T) {
	cutoff := time.Now().UTC().AddDate(0, 0, -30)

	cmd, err := commands.NewCleanupNotificationsCommand(cutoff)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, cutoff, cmd.Cutoff())
}

func TestNewCleanupNotificationsCommand_ZeroCutoff(t *testing.T) {
	_, err := commands.NewCleanupNotificationsCommand(time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
