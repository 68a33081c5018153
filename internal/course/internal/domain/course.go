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

type Course struct {
	ID    int64
	Title string
	// Price 单位为分
	Price int64
	Ctime int64
	Utime int64
}

// Enrollment 学生获得课程访问权的记录
type Enrollment struct {
	ID       int64
	UID      int64
	CourseID int64
	// 下面是报名时的附加信息，审核通过时从支付申请上带过来
	InviteCode string
	// AmountPaid 单位为分
	AmountPaid int64
	Currency   string
}
