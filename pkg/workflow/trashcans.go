// Copyright 2025 greenBin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package workflow

import (
	"context"

	"github.com/MeBouha/greenBin-sub000/pkg/models"
)

// EmptyTrashCan is the explicit field action of a collection crew: it
// resets a can's fill status to empty. No other fill transition is
// system-enforced; an authorized write may set any status at any time via
// SetFillStatus.
func (e *Engine) EmptyTrashCan(ctx context.Context, id int) (models.TrashCan, error) {
	return e.store.TrashCans.Update(ctx, id, func(t models.TrashCan) models.TrashCan {
		t.FillStatus = models.FillEmpty
		return t
	})
}

// SetFillStatus sets a can's fill status directly.
func (e *Engine) SetFillStatus(ctx context.Context, id int, status models.FillStatus) (models.TrashCan, error) {
	return e.store.TrashCans.Update(ctx, id, func(t models.TrashCan) models.TrashCan {
		t.FillStatus = status
		return t
	})
}
