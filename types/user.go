package types

// RegisterRequest 注册请求，密码长度 4~32
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,max=64"`
	Email     string `json:"email" binding:"omitempty,email"`
	Password  string `json:"password" binding:"required,min=4,max=32"`
	FirstName string `json:"first_name" binding:"omitempty,max=64"`
	LastName  string `json:"last_name" binding:"omitempty,max=64"`
}

type UpdateUserReq struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	// 密码修改走单独接口，需校验旧密码
}
