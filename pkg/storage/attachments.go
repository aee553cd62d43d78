package storage

import (
	"context"
	"encoding/json"
	"fmt"

	projects "github.com/goliatone/go-projects/components/projects"
)

// ContractVault adapts a Store into the contract attachment port. One
// attachment per project, keyed "contract_<id>"; attaching replaces any
// previous document.
type ContractVault struct {
	store Store
}

// NewContractVault wraps a Store.
func NewContractVault(store Store) *ContractVault {
	return &ContractVault{store: store}
}

var _ projects.AttachmentStore = (*ContractVault)(nil)

func contractKey(projectID int) string {
	return fmt.Sprintf("contract_%d", projectID)
}

// Attachment loads the stored contract, nil when none exists.
func (v *ContractVault) Attachment(ctx context.Context, projectID int) (*projects.ContractAttachment, error) {
	value, ok, err := v.store.Get(ctx, contractKey(projectID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var att projects.ContractAttachment
	if err := json.Unmarshal(value, &att); err != nil {
		return nil, fmt.Errorf("storage: decode contract for project %d: %w", projectID, err)
	}
	return &att, nil
}

// SaveAttachment stores the contract, replacing any previous one.
func (v *ContractVault) SaveAttachment(ctx context.Context, projectID int, att projects.ContractAttachment) error {
	value, err := json.Marshal(att)
	if err != nil {
		return fmt.Errorf("storage: encode contract for project %d: %w", projectID, err)
	}
	return v.store.Set(ctx, contractKey(projectID), value)
}

// RemoveAttachment deletes the stored contract.
func (v *ContractVault) RemoveAttachment(ctx context.Context, projectID int) error {
	return v.store.Delete(ctx, contractKey(projectID))
}
