package repository

import "strings"

// KeyNamespace prefixes every stored key.
const KeyNamespace = "liftlog"

// Entity names the logical record stored under a key.
type Entity string

const (
	EntityHistory         Entity = "sessions"
	EntityDraft           Entity = "draft"
	EntityAdvancedMode    Entity = "adv"
	EntityCustomPrograms  Entity = "custom_programs"
	EntityCustomExercises Entity = "custom_exercises"
	EntityWeightLog       Entity = "weight"
	EntityCurrentUser     Entity = "current_user"
)

// Key addresses one logical record. UserID is empty for global records.
type Key struct {
	Entity Entity
	UserID string
}

// UserKey scopes an entity to one user.
func UserKey(entity Entity, userID string) Key {
	return Key{Entity: entity, UserID: userID}
}

// GlobalKey addresses a record shared by all profiles.
func GlobalKey(entity Entity) Key {
	return Key{Entity: entity}
}

// String renders <namespace>_<entity>_<userId>, or <namespace>_<entity> for
// global records.
func (k Key) String() string {
	parts := []string{KeyNamespace, string(k.Entity)}
	if k.UserID != "" {
		parts = append(parts, k.UserID)
	}
	return strings.Join(parts, "_")
}
