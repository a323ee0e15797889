package projectservice

// Project модель проекта из ProjectService
type Project struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	OwnerID   int64   `json:"owner_id"`
	MemberIDs []int64 `json:"member_ids"`
}

// HasMember возвращает true, если пользователь участник проекта (владелец тоже участник)
func (p *Project) HasMember(userID int64) bool {
	if p.OwnerID == userID {
		return true
	}
	for _, id := range p.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// ErrorResponse модель ошибки от ProjectService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
