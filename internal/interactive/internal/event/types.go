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

package event

import "strconv"

const (
	MutationEventName = "engagement_mutations"
	ActionLike        = "like"
)

// MutationEvent 互动数据发生变化，下游据此让缓存失效
type MutationEvent struct {
	ContentItemID int64  `json:"contentItemId"`
	TargetType    string `json:"targetType"`
	TargetID      int64  `json:"targetId"`
	Action        string `json:"action"`
	Uid           int64  `json:"uid"`
}

func (e MutationEvent) MessageKey() string {
	return strconv.FormatInt(e.ContentItemID, 10)
}
