package statistic

import (
	"fmt"
	"time"

	"github.com/studyhive-lab/backend/internal/entity"
)

func ToPeriodWithTime(periodString string, current time.Time) (entity.LeaderboardPeriodType, error) {
	switch periodString {
	case "week":
		return entity.NewLeaderboardPeriodWeek(current), nil
	case "month":
		return entity.NewLeaderboardPeriodMonth(current), nil
	case "total":
		return entity.NewLeaderboardPeriodTotal(), nil
	}

	return nil, fmt.Errorf("invalid period, expected week, month, or total, but got %s", periodString)
}

func ToPeriod(periodString string) (entity.LeaderboardPeriodType, error) {
	return ToPeriodWithTime(periodString, time.Now())
}
