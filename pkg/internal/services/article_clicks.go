package services

import (
	"sync"

	"git.solsynth.dev/hypernet/journal/pkg/internal/database"
	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	articleClickQueue = make(map[uint]int64)
	articleClickLock  sync.Mutex
)

func AddArticleClick(id uint) {
	articleClickLock.Lock()
	defer articleClickLock.Unlock()
	articleClickQueue[id]++
}

// FlushArticleClicks writes the queued clicks into the articles.
// Counts only ever grow, the update never touches updated_at.
func FlushArticleClicks() {
	articleClickLock.Lock()
	workingQueue := articleClickQueue
	articleClickQueue = make(map[uint]int64)
	articleClickLock.Unlock()

	if len(workingQueue) == 0 {
		return
	}

	for id, count := range workingQueue {
		if err := database.C.Model(&models.Article{}).
			Where("id = ?", id).
			UpdateColumn("click", gorm.Expr("click + ?", count)).Error; err != nil {
			log.Error().Err(err).Uint("article", id).Msg("An error occurred when flushing article clicks...")
		}
	}

	log.Debug().Int("articles", len(workingQueue)).Msg("Flushed article clicks.")
}
