package database

import (
	"testing"

	"github.com/jainam30/mohil-enterprise/config"
	client "github.com/jainam30/mohil-enterprise/internal/database/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewStore_RefusesWithoutEndpoint(t *testing.T) {
	_, _, err := NewStore(zap.NewNop(), &config.Configuration{}, nil)
	require.ErrorIs(t, err, client.ErrMongoURIRequired)

	_, _, err = NewStore(zap.NewNop(), &config.Configuration{Database: config.Database{Driver: config.DriverPostgres}}, nil)
	require.ErrorIs(t, err, client.ErrPostgresDSNRequired)

	_, _, err = NewStore(zap.NewNop(), &config.Configuration{Database: config.Database{Driver: "mysql"}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mysql")
}
