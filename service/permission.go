package service

import "Pulse/models"

// 对象级权限判定，纯函数
// 读操作对所有已登录用户开放，写操作仅对 owner 开放

// CanModifyPost 判断请求者是否为帖子 owner
func CanModifyPost(requesterID int64, post *models.Post) bool {
	return post != nil && post.UserID == requesterID
}

// CanModifyUser 判断请求者是否为目标用户本人
func CanModifyUser(requesterID int64, targetID int64) bool {
	return requesterID == targetID
}
