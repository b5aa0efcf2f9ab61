package service

import "locator/internal/domain/entity"

// OpenStateObserver is notified of every open-state evaluation outcome.
type OpenStateObserver interface {
	ObserveOpenState(state entity.OpenState)
}
