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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	roots := func(n int) []CommentNode {
		res := make([]CommentNode, 0, n)
		for i := 1; i <= n; i++ {
			res = append(res, CommentNode{Comment: Comment{ID: int64(i)}})
		}
		return res
	}
	testCases := []struct {
		name        string
		total       int
		page        int
		pageSize    int
		maxPageSize int

		wantIDs        []int64
		wantPage       int
		wantPageSize   int
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{
			name:           "第一页",
			total:          10,
			page:           1,
			pageSize:       7,
			maxPageSize:    50,
			wantIDs:        []int64{1, 2, 3, 4, 5, 6, 7},
			wantPage:       1,
			wantPageSize:   7,
			wantTotalPages: 2,
			wantHasNext:    true,
		},
		{
			name:           "最后一页",
			total:          10,
			page:           2,
			pageSize:       7,
			maxPageSize:    50,
			wantIDs:        []int64{8, 9, 10},
			wantPage:       2,
			wantPageSize:   7,
			wantTotalPages: 2,
			wantHasPrev:    true,
		},
		{
			name:           "第二页是第11到20条",
			total:          25,
			page:           2,
			pageSize:       10,
			maxPageSize:    50,
			wantIDs:        []int64{11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
			wantPage:       2,
			wantPageSize:   10,
			wantTotalPages: 3,
			wantHasNext:    true,
			wantHasPrev:    true,
		},
		{
			name:           "超出范围",
			total:          10,
			page:           3,
			pageSize:       7,
			maxPageSize:    50,
			wantIDs:        []int64{},
			wantPage:       3,
			wantPageSize:   7,
			wantTotalPages: 2,
			wantHasPrev:    true,
		},
		{
			name:           "页码小于1当做第一页，页大小用默认值",
			total:          12,
			page:           -1,
			pageSize:       0,
			maxPageSize:    50,
			wantIDs:        []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			wantPage:       1,
			wantPageSize:   DefaultPageSize,
			wantTotalPages: 2,
			wantHasNext:    true,
		},
		{
			name:           "页大小超过上限",
			total:          4,
			page:           1,
			pageSize:       100,
			maxPageSize:    3,
			wantIDs:        []int64{1, 2, 3},
			wantPage:       1,
			wantPageSize:   3,
			wantTotalPages: 2,
			wantHasNext:    true,
		},
		{
			name:           "没有评论",
			total:          0,
			page:           1,
			pageSize:       10,
			maxPageSize:    50,
			wantIDs:        []int64{},
			wantPage:       1,
			wantPageSize:   10,
			wantTotalPages: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Paginate(roots(tc.total), tc.page, tc.pageSize, tc.maxPageSize)
			ids := make([]int64, 0, len(p.Items))
			for _, n := range p.Items {
				ids = append(ids, n.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
			assert.Equal(t, int64(tc.total), p.Total)
			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantPageSize, p.PageSize)
			assert.Equal(t, tc.wantTotalPages, p.TotalPages)
			assert.Equal(t, tc.wantHasNext, p.HasNext)
			assert.Equal(t, tc.wantHasPrev, p.HasPrev)
		})
	}
}

func TestNormalizeContent(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    string
		wantErr error
	}{
		{
			name:    "去掉首尾空白",
			content: "  \t你好 世界\n ",
			want:    "你好 世界",
		},
		{
			name:    "全是空白",
			content: " \n\t　 ",
			wantErr: ErrInvalidContent,
		},
		{
			name:    "正好500个字符",
			content: strings.Repeat("评", MaxContentLength),
			want:    strings.Repeat("评", MaxContentLength),
		},
		{
			name:    "超过500个字符",
			content: strings.Repeat("a", MaxContentLength+1),
			wantErr: ErrInvalidContent,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeContent(tc.content)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseSortPolicy(t *testing.T) {
	p, err := ParseSortPolicy("")
	require.NoError(t, err)
	assert.Equal(t, SortLatest, p)

	p, err = ParseSortPolicy("mostLiked")
	require.NoError(t, err)
	assert.Equal(t, SortMostLiked, p)

	_, err = ParseSortPolicy("hottest")
	assert.ErrorIs(t, err, ErrInvalidSort)
}

func TestConfig_MaxDepthOf(t *testing.T) {
	cfg := Config{
		DefaultMaxDepth: 2,
		MaxDepth:        map[string]int{"project": 3, "post": 1},
	}
	assert.Equal(t, 3, cfg.MaxDepthOf("project"))
	assert.Equal(t, 1, cfg.MaxDepthOf("post"))
	assert.Equal(t, 2, cfg.MaxDepthOf("other"))
	assert.Equal(t, DefaultMaxDepth, Config{}.MaxDepthOf("post"))
}
