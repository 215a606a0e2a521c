package domain

import "github.com/diskusi-dev/diskusi/internal/errors"

// Payload validators for the use cases that take identifiers only.
// Same fixed order as the entity constructors: presence, then type.

func ValidateDetailThreadPayload(thread any) (ThreadId, error) {
	if falsy(thread) {
		return "", errors.NewValidation("GET_DETAIL_THREAD_USE_CASE.NOT_CONTAIN_NEEDED_PROPERTY")
	}
	id, ok := thread.(string)
	if !ok {
		return "", errors.NewValidation("GET_DETAIL_THREAD_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION")
	}
	return id, nil
}

func ValidateDeleteCommentPayload(thread, comment any) (ThreadId, CommentId, error) {
	if falsy(thread) || falsy(comment) {
		return "", "", errors.NewValidation("DELETE_COMMENT_USE_CASE.NOT_CONTAIN_NEEDED_PROPERTY")
	}
	ids, ok := allStrings(thread, comment)
	if !ok {
		return "", "", errors.NewValidation("DELETE_COMMENT_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION")
	}
	return ids[0], ids[1], nil
}

func ValidateLikeCommentPayload(thread, comment any) (ThreadId, CommentId, error) {
	if falsy(thread) || falsy(comment) {
		return "", "", errors.NewValidation("LIKE_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	}
	ids, ok := allStrings(thread, comment)
	if !ok {
		return "", "", errors.NewValidation("LIKE_COMMENT.NOT_MEET_DATA_SPECIFICATION")
	}
	return ids[0], ids[1], nil
}

func ValidateDeleteReplyPayload(thread, comment, reply any) (ThreadId, CommentId, ReplyId, error) {
	if falsy(thread) || falsy(comment) || falsy(reply) {
		return "", "", "", errors.NewValidation("DELETE_REPLY_USE_CASE.NOT_CONTAIN_NEEDED_PROPERTY")
	}
	ids, ok := allStrings(thread, comment, reply)
	if !ok {
		return "", "", "", errors.NewValidation("DELETE_REPLY_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION")
	}
	return ids[0], ids[1], ids[2], nil
}

func ValidateRefreshTokenPayload(useCase string, token any) (string, error) {
	if falsy(token) {
		return "", errors.NewValidation(useCase + ".NOT_CONTAIN_REFRESH_TOKEN")
	}
	t, ok := token.(string)
	if !ok {
		return "", errors.NewValidation(useCase + ".PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION")
	}
	return t, nil
}
