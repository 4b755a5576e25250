package logger

import "log/slog"

// Error records a single error under the key "error". Nil errors produce an
// empty attribute that slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID records the user identifier.
func UserID(id string) slog.Attr {
	return slog.String("user_id", id)
}

// OrganizationID records the organization identifier.
func OrganizationID(id string) slog.Attr {
	return slog.String("organization_id", id)
}

// Role records the effective role name.
func Role(role any) slog.Attr {
	if role == nil {
		return slog.Attr{}
	}
	return slog.Any("role", role)
}

// RequestID records the request identifier.
func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

// Component records the emitting component's name.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Status records an HTTP status code.
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}
