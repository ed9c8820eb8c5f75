package dto

// PublishRequest is the body of the internal publish endpoint.
type PublishRequest struct {
	UserIDs []string       `json:"user_ids" validate:"required,min=1,dive,required"`
	Type    string         `json:"type" validate:"required"`
	Title   string         `json:"title" validate:"required"`
	Message string         `json:"message" validate:"required"`
	Data    map[string]any `json:"data,omitempty"`
}

// PreferencesRequest is the body of the preferences update endpoint.
type PreferencesRequest struct {
	PushEnabled    bool `json:"push_enabled"`
	EmailEnabled   bool `json:"email_enabled"`
	DigestsEnabled bool `json:"digests_enabled"`
}
