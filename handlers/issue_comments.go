package handlers

import (
	"log"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleIssueCommentAdd appends a comment to the issue's thread.
// Route: POST /issues/{id}/comments
func HandleIssueCommentAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		issueID := e.Request.PathValue("id")
		if _, err := app.FindRecordById("nursery_issues", issueID); err != nil {
			return ErrorToast(e, 404, "Issue not found")
		}

		body := strings.TrimSpace(e.Request.FormValue("body"))
		if body == "" {
			return ErrorToast(e, 400, "Comment cannot be empty")
		}

		col, err := app.FindCollectionByNameOrId("issue_comments")
		if err != nil {
			return ErrorToast(e, 500, "Issue comments collection is missing")
		}

		comment := core.NewRecord(col)
		comment.Set("issue", issueID)
		comment.Set("author", strings.TrimSpace(e.Request.FormValue("author")))
		comment.Set("body", body)
		if err := app.Save(comment); err != nil {
			log.Printf("issue_comment: could not save comment: %v", err)
			return ErrorToast(e, 500, "Could not save comment")
		}

		SetToast(e, "success", "Comment added")
		return e.Redirect(303, "/issues/"+issueID)
	}
}
