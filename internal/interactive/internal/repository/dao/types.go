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

package dao

// UserLike 一条记录代表某个用户点赞了某个对象，不存在即没有点赞
type UserLike struct {
	Id         int64  `gorm:"primaryKey,autoIncrement"`
	Uid        int64  `gorm:"uniqueIndex:uid_target"`
	TargetType string `gorm:"type:varchar(64);uniqueIndex:uid_target"`
	TargetId   int64  `gorm:"uniqueIndex:uid_target;index:target_type_id"`
	Ctime      int64
	Utime      int64
}

func (UserLike) TableName() string {
	return "user_likes"
}

// likeTarget 被点赞对象在锁定读时的快照
type likeTarget struct {
	Id            int64
	ContentItemId int64
	LikeCnt       int64
}

// ToggleResult 事务提交之后的状态
type ToggleResult struct {
	ContentItemId int64
	Liked         bool
	LikeCnt       int64
}
