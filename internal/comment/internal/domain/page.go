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

// Page 只对一级评论分页，回复跟着自己的一级评论走，不会拆到两页里面
type Page struct {
	Items      []CommentNode
	Page       int
	PageSize   int
	Total      int64
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

func Paginate(roots []CommentNode, page, pageSize, maxPageSize int) Page {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if maxPageSize > 0 && pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	total := len(roots)
	totalPages := (total + pageSize - 1) / pageSize
	res := Page{
		Items:      []CommentNode{},
		Page:       page,
		PageSize:   pageSize,
		Total:      int64(total),
		TotalPages: totalPages,
		HasPrev:    page > 1,
	}
	if page > totalPages {
		return res
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, total)
	res.Items = roots[start:end]
	res.HasNext = page < totalPages
	return res
}
