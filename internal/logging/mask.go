package logging

import "strings"

// sensitiveKeys are setting and form fields whose values are masked in logs.
var sensitiveKeys = map[string]bool{
	"password":      true,
	"email":         true,
	"profile.email": true,
	"profile.name":  true,
}

// MaskEmail keeps the first two characters of the local part and the domain.
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return MaskValue("password", email)
	}
	if len(local) > 2 {
		local = local[:2]
	}
	return local + "***@" + domain
}

// MaskValue masks value when key names personal data.
func MaskValue(key, value string) string {
	k := strings.ToLower(key)
	if !sensitiveKeys[k] {
		return value
	}
	if strings.HasSuffix(k, "email") && strings.Contains(value, "@") {
		return MaskEmail(value)
	}
	if value == "" {
		return ""
	}
	return "***"
}
