package utils

import (
	"time"

	"mealmax/models"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CronCleaner schedules the periodic maintenance jobs. Battle losers
// are only soft-deleted, so the rows linger until this purges them.
func CronCleaner(db *gorm.DB, logger *zap.Logger) {
	c := cron.New()

	// 48時間以上前にソフトデリートされたmealを完全に削除するジョブ
	c.AddFunc("0 3 * * *", func() {
		logger.Info("ソフトデリートされたmealを削除する処理を開始")
		result := db.Unscoped().
			Where("deleted_at IS NOT NULL AND deleted_at <= ?", time.Now().Add(-48*time.Hour)).
			Delete(&models.Meal{})
		if result.Error != nil {
			logger.Error("mealの削除に失敗しました", zap.Error(result.Error))
		} else {
			logger.Info("mealの削除完了", zap.Int("meals_deleted", int(result.RowsAffected)))
		}
	})

	// 期限切れのセッショントークンを削除するジョブ（毎日特定の時間に実行）
	c.AddFunc("@daily", func() {
		logger.Info("期限切れトークンを削除する処理を開始")
		result := db.Unscoped().
			Where("expires_at <= ?", time.Now()).
			Delete(&models.SessionToken{})
		if result.Error != nil {
			logger.Error("期限切れトークンの削除に失敗しました", zap.Error(result.Error))
		} else {
			logger.Info("期限切れトークンの削除完了", zap.Int("tokens_deleted", int(result.RowsAffected)))
		}
	})

	c.Start()
}
