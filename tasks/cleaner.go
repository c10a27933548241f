package tasks

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"yatube/storage"
)

// ActivationDeadline is how long a fresh account has to visit its activation
// link before the cleaner removes it.
const ActivationDeadline = 6 * time.Minute

// CleanInactiveUsers periodically deletes accounts that never activated.
func CleanInactiveUsers(storageManager *storage.Manager) {
	for {
		select {
		case <-time.After(1 * time.Minute):
			deleted, err := storageManager.DeleteNeverActivated(
				context.Background(),
				time.Now().Add(-ActivationDeadline),
			)
			if err != nil {
				log.Errorf("Error cleaning inactive users: %v", err)
			} else if deleted > 0 {
				log.Infof("Removed %d accounts that never activated", deleted)
			}
		}
	}
}
