package statistic

import (
	"fmt"

	"github.com/studyhive-lab/backend/internal/entity"
)

func redisKeyXPLeaderboard(period entity.LeaderboardPeriodType) string {
	return fmt.Sprintf("xp:%s", period.Period())
}
