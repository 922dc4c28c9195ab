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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildForest(t *testing.T) {
	const item int64 = 1
	testCases := []struct {
		name     string
		rows     []Comment
		policy   SortPolicy
		maxDepth int

		wantRoots   []int64
		wantTree    map[int64][]int64
		wantReplies map[int64]int64
		wantOmitted int
	}{
		{
			name: "按照最新排序，回复按照时间正序",
			rows: []Comment{
				{ID: 1, ContentItemID: item, Ctime: 100},
				{ID: 2, ContentItemID: item, Ctime: 200},
				{ID: 3, ContentItemID: item, ParentID: 1, Ctime: 400, RepliesCnt: 9},
				{ID: 4, ContentItemID: item, ParentID: 1, Ctime: 300},
				{ID: 5, ContentItemID: item, ParentID: 4, Ctime: 500},
			},
			policy:    SortLatest,
			maxDepth:  3,
			wantRoots: []int64{2, 1},
			wantTree: map[int64][]int64{
				1: {4, 3},
				4: {5},
			},
			wantReplies: map[int64]int64{1: 2, 2: 0, 3: 0, 4: 1, 5: 0},
		},
		{
			name: "最早排序，时间相同按照 ID",
			rows: []Comment{
				{ID: 7, ContentItemID: item, Ctime: 100},
				{ID: 6, ContentItemID: item, Ctime: 100},
				{ID: 8, ContentItemID: item, Ctime: 50},
			},
			policy:    SortOldest,
			maxDepth:  3,
			wantRoots: []int64{8, 6, 7},
		},
		{
			name: "点赞最多排序，点赞数相同按照最新",
			rows: []Comment{
				{ID: 1, ContentItemID: item, Ctime: 100, LikeCnt: 3},
				{ID: 2, ContentItemID: item, Ctime: 200, LikeCnt: 3},
				{ID: 3, ContentItemID: item, Ctime: 300, LikeCnt: 10},
				{ID: 4, ContentItemID: item, Ctime: 400},
			},
			policy:    SortMostLiked,
			maxDepth:  3,
			wantRoots: []int64{3, 2, 1, 4},
		},
		{
			name: "最佳答案排在最前面",
			rows: []Comment{
				{ID: 1, ContentItemID: item, Ctime: 100, BestAnswer: true},
				{ID: 2, ContentItemID: item, Ctime: 200, LikeCnt: 5},
				{ID: 3, ContentItemID: item, Ctime: 300},
			},
			policy:    SortMostLiked,
			maxDepth:  3,
			wantRoots: []int64{1, 2, 3},
		},
		{
			name: "超过最大深度的评论被丢弃，回复数按照实际挂上去的计算",
			rows: []Comment{
				{ID: 1, ContentItemID: item, Ctime: 100, RepliesCnt: 1},
				{ID: 2, ContentItemID: item, ParentID: 1, Ctime: 200, RepliesCnt: 1},
				{ID: 3, ContentItemID: item, ParentID: 2, Ctime: 300},
			},
			policy:    SortLatest,
			maxDepth:  1,
			wantRoots: []int64{1},
			wantTree: map[int64][]int64{
				1: {2},
			},
			wantReplies: map[int64]int64{1: 1, 2: 0},
			wantOmitted: 1,
		},
		{
			name: "找不到父评论、成环、其它内容下的评论都被忽略",
			rows: []Comment{
				{ID: 1, ContentItemID: item, Ctime: 100},
				{ID: 2, ContentItemID: item, ParentID: 99, Ctime: 200},
				{ID: 3, ContentItemID: item, ParentID: 4, Ctime: 300},
				{ID: 4, ContentItemID: item, ParentID: 3, Ctime: 400},
				{ID: 5, ContentItemID: item, ParentID: 5, Ctime: 500},
				{ID: 6, ContentItemID: 2, Ctime: 600},
				{ID: 7, ContentItemID: 2, ParentID: 1, Ctime: 700},
			},
			policy:      SortLatest,
			maxDepth:    3,
			wantRoots:   []int64{1},
			wantReplies: map[int64]int64{1: 0},
			wantOmitted: 4,
		},
		{
			name:      "没有评论",
			policy:    SortLatest,
			maxDepth:  3,
			wantRoots: []int64{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			forest := BuildForest(item, tc.rows, tc.policy, tc.maxDepth)
			roots := make([]int64, 0, len(forest.Roots))
			for _, n := range forest.Roots {
				roots = append(roots, n.ID)
			}
			assert.Equal(t, tc.wantRoots, roots)
			assert.Equal(t, tc.wantOmitted, forest.Omitted)

			tree := map[int64][]int64{}
			replies := map[int64]int64{}
			var walk func(nodes []CommentNode, depth int)
			walk = func(nodes []CommentNode, depth int) {
				for _, n := range nodes {
					assert.Equal(t, depth, n.Depth)
					assert.LessOrEqual(t, n.Depth, tc.maxDepth)
					assert.Nil(t, n.LikedByViewer)
					replies[n.ID] = n.RepliesCnt
					for _, c := range n.Children {
						tree[n.ID] = append(tree[n.ID], c.ID)
					}
					walk(n.Children, depth+1)
				}
			}
			walk(forest.Roots, 0)
			if tc.wantTree == nil {
				tc.wantTree = map[int64][]int64{}
			}
			assert.Equal(t, tc.wantTree, tree)
			if tc.wantReplies != nil {
				assert.Equal(t, tc.wantReplies, replies)
			}
		})
	}
}

func TestApplyViewerLikes(t *testing.T) {
	forest := BuildForest(1, []Comment{
		{ID: 1, ContentItemID: 1, Ctime: 100},
		{ID: 2, ContentItemID: 1, ParentID: 1, Ctime: 200},
		{ID: 3, ContentItemID: 1, Ctime: 300},
	}, SortOldest, 3)
	assert.Equal(t, []int64{1, 2, 3}, forest.IDs())

	ApplyViewerLikes(forest.Roots, map[int64]bool{2: true, 3: true})
	root := forest.Roots[0]
	assert.False(t, *root.LikedByViewer)
	assert.True(t, *root.Children[0].LikedByViewer)
	assert.True(t, *forest.Roots[1].LikedByViewer)
}
