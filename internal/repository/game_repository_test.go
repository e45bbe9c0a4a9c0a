package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/shapist-backend-go/internal/models"
)

func TestGameRepositoryBestForLevel(t *testing.T) {
	t.Parallel()
	repo := NewGameRepository(testDB(t))
	now := time.Now()

	require.NoError(t, repo.SaveRun("run1", models.GameSummary{LevelID: "S1L1", Score: 1200, MaxCombo: 8}, now))
	require.NoError(t, repo.SaveRun("run2", models.GameSummary{LevelID: "S1L1", Score: 2400, MaxCombo: 15}, now))
	require.NoError(t, repo.SaveRun("run3", models.GameSummary{LevelID: "S1L2", Score: 900, MaxCombo: 5}, now))

	best, err := repo.BestForLevel("S1L1")
	require.NoError(t, err)
	assert.Equal(t, 2400, best.Score)
	assert.Equal(t, 15, best.MaxCombo)

	_, err = repo.BestForLevel("S9L9")
	assert.ErrorIs(t, err, ErrNotFound)
}
