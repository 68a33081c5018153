package web

import "github.com/ecodeclub/ecourse/internal/notification/internal/domain"

type Notification struct {
	ID       int64  `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	CourseID int64  `json:"courseId,omitempty"`
	Read     bool   `json:"read"`
	ReadAt   int64  `json:"readAt,omitempty"`
	Ctime    int64  `json:"ctime"`
}

func newNotification(n domain.Notification) Notification {
	return Notification{
		ID:       n.ID,
		Type:     n.Type,
		Title:    n.Title,
		Content:  n.Content,
		CourseID: n.CourseID,
		Read:     n.Read(),
		ReadAt:   n.ReadAt,
		Ctime:    n.Ctime,
	}
}

type ListNotificationsResp struct {
	Notifications []Notification `json:"notifications"`
	Total         int64          `json:"total"`
}

type UnreadCountResp struct {
	Count int64 `json:"count"`
}
