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

package web

type CreateReq struct {
	ContentItemID int64 `json:"contentItemId"`
	// 0 代表直接评论内容
	ParentID int64  `json:"parentId"`
	Content  string `json:"content"`
}

type BestAnswerReq struct {
	ContentItemID int64 `json:"contentItemId"`
	CommentID     int64 `json:"commentId"`
}

type BestAnswerResp struct {
	ContentItemID int64 `json:"contentItemId"`
	// 0 代表当前没有最佳答案
	BestAnswerID int64 `json:"bestAnswerId"`
}

type TreeReq struct {
	ContentItemID int64 `json:"contentItemId"`
	// latest, oldest 或者 mostLiked，默认 latest
	Sort string `json:"sort"`
}

type ListReq struct {
	ContentItemID int64  `json:"contentItemId"`
	Sort          string `json:"sort"`
	Page          int    `json:"page"`
	PageSize      int    `json:"pageSize"`
}

type Comment struct {
	ID            int64  `json:"id"`
	ContentItemID int64  `json:"contentItemId"`
	Uid           int64  `json:"uid"`
	ParentID      int64  `json:"parentId"`
	AncestorID    int64  `json:"ancestorId"`
	Depth         int    `json:"depth"`
	Content       string `json:"content"`
	LikeCnt       int64  `json:"likeCnt"`
	RepliesCnt    int64  `json:"repliesCnt"`
	BestAnswer    bool   `json:"bestAnswer"`
	// 匿名访问的时候没有这个字段
	Liked   *bool     `json:"liked,omitempty"`
	Replies []Comment `json:"replies"`
	Ctime   int64     `json:"ctime"`
	Utime   int64     `json:"utime"`
}

type CommentTree struct {
	Comments []Comment `json:"comments"`
}

type CommentList struct {
	Comments   []Comment `json:"comments"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	Total      int64     `json:"total"`
	TotalPages int       `json:"totalPages"`
	HasNext    bool      `json:"hasNext"`
	HasPrev    bool      `json:"hasPrev"`
}
