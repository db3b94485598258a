package catalog

// CanMutate reports whether p may update or delete component c.
// The creator and any admin may; nobody else, and never a missing principal.
func CanMutate(p *Principal, c Component) bool {
	return canMutate(p, c.CreatedBy)
}

// CanMutateCategory applies the component rule to a stored category.
func CanMutateCategory(p *Principal, c Category) bool {
	return canMutate(p, c.CreatedBy)
}

func canMutate(p *Principal, owner string) bool {
	if p == nil {
		return false
	}
	if p.Role == RoleAdmin {
		return true
	}
	return p.ID != "" && p.ID == owner
}
