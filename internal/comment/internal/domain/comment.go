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

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	MinContentLength = 1
	MaxContentLength = 500
)

var (
	ErrInvalidContent = errors.New("评论内容不合法")
	ErrInvalidSort    = errors.New("不支持的排序方式")
)

type Comment struct {
	ID            int64
	ContentItemID int64
	// 评论的人
	Uid int64
	// 0 代表直接评论内容本身
	ParentID int64
	// 所在的一级评论，一级评论自己是 0
	AncestorID int64
	// 一级评论是 0
	Depth int

	Content string

	LikeCnt    int64
	RepliesCnt int64
	BestAnswer bool

	Ctime int64
	Utime int64
}

func (c Comment) IsTopLevel() bool {
	return c.ParentID == 0
}

// NormalizeContent 先去掉首尾空白再校验长度，长度按照字符数计算
func NormalizeContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	n := utf8.RuneCountInString(content)
	if n < MinContentLength || n > MaxContentLength {
		return "", fmt.Errorf("%w: 长度 %d 不在 [%d, %d] 之间",
			ErrInvalidContent, n, MinContentLength, MaxContentLength)
	}
	return content, nil
}

type SortPolicy string

const (
	SortLatest    SortPolicy = "latest"
	SortOldest    SortPolicy = "oldest"
	SortMostLiked SortPolicy = "mostLiked"
)

// ParseSortPolicy 空字符串按照最新排序
func ParseSortPolicy(s string) (SortPolicy, error) {
	switch SortPolicy(s) {
	case "":
		return SortLatest, nil
	case SortLatest, SortOldest, SortMostLiked:
		return SortPolicy(s), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidSort, s)
	}
}

// BestAnswerState 0 表示没有最佳答案
type BestAnswerState struct {
	ContentItemID int64
	CommentID     int64
}

func (s BestAnswerState) HasBestAnswer() bool {
	return s.CommentID > 0
}
