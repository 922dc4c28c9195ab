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

const (
	TargetContent = "content"
	TargetComment = "comment"
)

func IsValidTargetType(targetType string) bool {
	return targetType == TargetContent || targetType == TargetComment
}

// LikeToggle 一次点赞切换之后的状态
type LikeToggle struct {
	TargetType string
	TargetID   int64
	// 点赞对象所属的内容，评论对应的是它挂载的内容
	ContentItemID int64
	Liked         bool
	// 事务提交后的点赞数
	LikeCnt int64
}
