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
	InvalidTargetTypeError = ErrorCode{Code: 414001, Msg: "不支持的点赞对象"}
	TargetNotFoundError    = ErrorCode{Code: 414002, Msg: "点赞对象不存在"}
	UnauthorizedError      = ErrorCode{Code: 414003, Msg: "请先登录"}

	SystemError    = ErrorCode{Code: 514001, Msg: "系统错误"}
	TransientError = ErrorCode{Code: 514002, Msg: "系统繁忙，请稍后重试"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
