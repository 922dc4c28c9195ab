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

package errs

var (
	InvalidContentError = ErrorCode{Code: 415001, Msg: "评论内容不合法"}
	NotFoundError       = ErrorCode{Code: 415002, Msg: "评论对象不存在"}
	DepthExceededError  = ErrorCode{Code: 415003, Msg: "回复层级过深"}
	ForbiddenError      = ErrorCode{Code: 415004, Msg: "只有作者才能选择最佳答案"}
	InvalidTargetError  = ErrorCode{Code: 415005, Msg: "只有一级评论才能成为最佳答案"}
	UnauthorizedError   = ErrorCode{Code: 415006, Msg: "请先登录"}
	InvalidSortError    = ErrorCode{Code: 415007, Msg: "不支持的排序方式"}

	SystemError    = ErrorCode{Code: 515001, Msg: "系统错误"}
	TransientError = ErrorCode{Code: 515002, Msg: "系统繁忙，请稍后重试"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
