// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

// Notification 站内信
type Notification struct {
	ID    int64
	UID   int64
	Type  string
	Title string
	// Content 通知正文
	Content string
	// CourseID 关联的课程，可以为 0 表示不关联
	CourseID int64
	// ReadAt 已读时间戳，毫秒。0 表示未读
	ReadAt int64
	Ctime  int64
	Utime  int64
}

func (n Notification) Read() bool {
	return n.ReadAt > 0
}

const (
	TypePaymentAccepted = "payment_accepted"
)
