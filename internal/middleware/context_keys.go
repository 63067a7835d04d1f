package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// subjectKey stores the authenticated token subject in the request context.
const subjectKey = contextKey("subject")

// GetSubjectFromContext retrieves the authenticated token subject.
// It returns false when authentication is disabled or the request is anonymous.
func GetSubjectFromContext(c *gin.Context) (string, bool) {
	return SubjectFromCtx(c.Request.Context())
}

// SubjectFromCtx is GetSubjectFromContext for a standard context.
func SubjectFromCtx(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	return subject, ok && subject != ""
}
