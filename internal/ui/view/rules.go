package view

import (
	"github.com/palemoky/landlord-trainer/internal/ui/common"
)

// RenderGameRules renders the rules and key bindings.
func RenderGameRules() string {
	var sb string

	sb += "【训练目标】\n"
	sb += "三家自动出牌，你负责记住每个点数还剩几张\n"
	sb += "每出 8 手牌有机会弹出记牌测验，答对 +10 分\n\n"

	sb += "【牌型说明】\n"
	sb += "• 单牌：任意一张牌\n"
	sb += "• 对子：两张点数相同的牌\n"
	sb += "• 三张：三张点数相同的牌\n"
	sb += "• 炸弹：四张点数相同的牌（可炸任何牌型）\n"
	sb += "• 王炸：大王 + 小王（最大的牌型）\n\n"

	sb += "【出牌规则】\n"
	sb += "1. 地主 20 张牌先出，农民各 17 张\n"
	sb += "2. 后续玩家必须出相同牌型且更大的牌，否则不要\n"
	sb += "3. 其余两家都不要时，最后出牌的玩家自由出牌\n"
	sb += "4. 炸弹和王炸可以压任何牌型\n\n"

	sb += "【快捷键】\n"
	sb += "• N：新的一局\n"
	sb += "• 空格：开始/暂停自动出牌\n"
	sb += "• 回车：手动出一步\n"
	sb += "• +/-：调整出牌速度\n"
	sb += "• M：记牌板标出我的手牌\n"
	sb += "• K：立即来一道记牌题\n"
	sb += "• H：显示/隐藏帮助\n"
	sb += "• Q：退出\n"

	return common.BoxStyle.Render(sb)
}
