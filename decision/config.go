package decision

// Config is passed on every evaluation. The zero value is the default:
// team actions disabled.
type Config struct {
	GroupActionsEnabled bool `json:"groupActionsEnabled"`
}
