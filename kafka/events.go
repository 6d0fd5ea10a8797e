package kafka

import "time"

// CocktailCreatedEvent is published after a successful composite create.
type CocktailCreatedEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	CocktailID  uint      `json:"cocktail_id"`
	Name        string    `json:"name"`
	IsAlcoholic *bool     `json:"is_alcoholic,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// CocktailDeletedEvent is published after a successful cascade delete.
type CocktailDeletedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	CocktailID uint      `json:"cocktail_id"`
	Timestamp  time.Time `json:"timestamp"`
}

// FavoriteChangedEvent is published when a favorite is added or removed.
type FavoriteChangedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	UserID     string    `json:"user_id"`
	CocktailID uint      `json:"cocktail_id"`
	Status     string    `json:"status"` // "added" or "removed"
	Timestamp  time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeCocktailCreated = "cocktail.created"
	EventTypeCocktailDeleted = "cocktail.deleted"
	EventTypeFavoriteChanged = "favorite.changed"
)

// Kafka topics
const (
	TopicCocktailEvents = "cocktail-events"
	TopicFavoriteEvents = "favorite-events"
)
