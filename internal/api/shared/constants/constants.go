package constants

const (
	MAX_PAGE_SIZE         = 100
	DEFAULT_PAGE_SIZE     = 20
	MAX_BATCH_PURCHASES   = 50
	MAX_RECYCLE_STACKS    = 64
	DEFAULT_HISTORY_LIMIT = 20
	MAX_ITEM_TYPE_LENGTH  = 255
	MAX_GOODS_QUANTITY    = 1_000_000
	ACTOR_ID_HEADER       = "X-Actor-Id"
	ACTOR_NAME_HEADER     = "X-Actor-Name"
)
