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
	"cmp"
	"slices"
)

type CommentNode struct {
	Comment
	// nil 代表匿名访问
	LikedByViewer *bool
	Children      []CommentNode
}

// Forest 组装好的评论树
type Forest struct {
	Roots []CommentNode
	// 没有挂到树上的评论数量，包括超过最大深度的、找不到父评论的、成环的
	Omitted int
}

// IDs 先序遍历所有节点的 ID
func (f Forest) IDs() []int64 {
	res := make([]int64, 0, 16)
	var walk func(nodes []CommentNode)
	walk = func(nodes []CommentNode) {
		for _, n := range nodes {
			res = append(res, n.ID)
			walk(n.Children)
		}
	}
	walk(f.Roots)
	return res
}

// ApplyViewerLikes 填充当前用户是否点赞过
func ApplyViewerLikes(nodes []CommentNode, liked map[int64]bool) {
	for i := range nodes {
		val := liked[nodes[i].ID]
		nodes[i].LikedByViewer = &val
		ApplyViewerLikes(nodes[i].Children, liked)
	}
}

// BuildForest 把同一个内容下的扁平评论组装成森林。
// 深度以遍历时的实际层数为准，超过 maxDepth 的子树直接丢弃。
func BuildForest(contentItemID int64, rows []Comment, policy SortPolicy, maxDepth int) Forest {
	b := &forestBuilder{
		arena:    make(map[int64]Comment, len(rows)),
		children: make(map[int64][]int64, len(rows)),
		visited:  make(map[int64]struct{}, len(rows)),
		maxDepth: maxDepth,
	}
	roots := make([]int64, 0, len(rows))
	for _, r := range rows {
		if r.ContentItemID != contentItemID {
			continue
		}
		if _, ok := b.arena[r.ID]; ok {
			continue
		}
		b.arena[r.ID] = r
		if r.IsTopLevel() {
			roots = append(roots, r.ID)
			continue
		}
		b.children[r.ParentID] = append(b.children[r.ParentID], r.ID)
	}

	nodes := make([]CommentNode, 0, len(roots))
	for _, id := range roots {
		nodes = append(nodes, b.build(id, 0))
	}
	sortRoots(nodes, policy)
	return Forest{
		Roots:   nodes,
		Omitted: len(b.arena) - len(b.visited),
	}
}

type forestBuilder struct {
	arena    map[int64]Comment
	children map[int64][]int64
	visited  map[int64]struct{}
	maxDepth int
}

func (b *forestBuilder) build(id int64, depth int) CommentNode {
	b.visited[id] = struct{}{}
	c := b.arena[id]
	c.Depth = depth
	node := CommentNode{Comment: c}
	if depth < b.maxDepth {
		childIDs := b.children[id]
		// 回复永远按照时间正序
		slices.SortFunc(childIDs, func(x, y int64) int {
			return compareOldest(b.arena[x], b.arena[y])
		})
		for _, cid := range childIDs {
			if _, ok := b.visited[cid]; ok {
				continue
			}
			node.Children = append(node.Children, b.build(cid, depth+1))
		}
	}
	node.RepliesCnt = int64(len(node.Children))
	return node
}

func sortRoots(nodes []CommentNode, policy SortPolicy) {
	var cmpFn func(x, y Comment) int
	switch policy {
	case SortOldest:
		cmpFn = compareOldest
	case SortMostLiked:
		cmpFn = func(x, y Comment) int {
			if c := cmp.Compare(y.LikeCnt, x.LikeCnt); c != 0 {
				return c
			}
			return compareLatest(x, y)
		}
	default:
		cmpFn = compareLatest
	}
	slices.SortStableFunc(nodes, func(x, y CommentNode) int {
		// 最佳答案排在最前面
		if x.BestAnswer != y.BestAnswer {
			if x.BestAnswer {
				return -1
			}
			return 1
		}
		return cmpFn(x.Comment, y.Comment)
	})
}

func compareOldest(x, y Comment) int {
	if c := cmp.Compare(x.Ctime, y.Ctime); c != 0 {
		return c
	}
	return cmp.Compare(x.ID, y.ID)
}

func compareLatest(x, y Comment) int {
	return compareOldest(y, x)
}
