package tween

import (
	"math"

	"github.com/gonewx/sitemotion/pkg/utils"
)

// playhead 补间与时间轴共用的播放状态
type playhead struct {
	engine *Engine // nil 表示由父时间轴驱动，不进入注册表
	self   Animation

	render func(t float64)
	total  func() float64

	time      float64
	delay     float64
	delayLeft float64

	// repeat 完成后重复的次数，-1 为无限；yoyo 时每次重复换向
	repeat     int
	repeatLeft int
	yoyo       bool
	yoyoBack   bool

	reversed bool
	playing  bool
	rendered bool
	dead     bool // 已 Kill 或 Revert

	onComplete func()
}

func (p *playhead) setPlaying(playing bool) {
	p.playing = playing
	if p.engine == nil {
		return
	}
	if playing {
		p.engine.register(p.self)
	} else {
		p.engine.unregister(p.self)
	}
}

func (p *playhead) draw() {
	p.render(p.time)
	p.rendered = true
}

// Play 正向播放
func (p *playhead) Play() {
	if p.dead {
		return
	}
	p.reversed = false
	if p.rendered && p.time >= p.total() {
		p.setPlaying(false)
		return
	}
	p.setPlaying(true)
}

// Reverse 反向播放回起点
func (p *playhead) Reverse() {
	if p.dead {
		return
	}
	p.reversed = true
	if p.time <= 0 {
		p.setPlaying(false)
		return
	}
	p.setPlaying(true)
}

// Pause 暂停
func (p *playhead) Pause() {
	if p.dead {
		return
	}
	p.setPlaying(false)
}

// Restart 回到起点并重新计算延迟后正向播放
func (p *playhead) Restart() {
	if p.dead {
		return
	}
	p.time = 0
	p.delayLeft = p.delay
	p.repeatLeft = p.repeat
	p.yoyoBack = false
	p.reversed = false
	p.draw()
	p.setPlaying(true)
}

// Progress 线性进度
func (p *playhead) Progress() float64 {
	total := p.total()
	if total <= 0 {
		if p.rendered && !p.reversed {
			return 1
		}
		return 0
	}
	return p.time / total
}

// SetProgress 跳到指定进度并渲染
func (p *playhead) SetProgress(progress float64) {
	if p.dead {
		return
	}
	p.time = utils.Clamp01(progress) * p.total()
	p.draw()
}

// Duration 总时长
func (p *playhead) Duration() float64 {
	return p.total()
}

// IsActive 是否正在播放
func (p *playhead) IsActive() bool {
	return p.playing && !p.dead
}

// IsReversed 是否反向
func (p *playhead) IsReversed() bool {
	return p.reversed
}

// Kill 停止，保留当前样式
func (p *playhead) Kill() {
	if p.dead {
		return
	}
	p.setPlaying(false)
	p.dead = true
}

func (p *playhead) advance(dt float64) {
	if !p.playing || p.dead {
		return
	}
	total := p.total()

	if !p.reversed {
		if p.delayLeft > 0 {
			p.delayLeft -= dt
			if p.delayLeft > 0 {
				return
			}
			dt = -p.delayLeft
			p.delayLeft = 0
		}
		if p.yoyoBack {
			p.time -= dt
		} else {
			p.time += dt
		}
		if (!p.yoyoBack && p.time >= total) || (p.yoyoBack && p.time <= 0) {
			if p.repeatLeft != 0 && total > 0 {
				p.nextCycle(total)
				p.draw()
				return
			}
			if p.yoyoBack {
				p.time = 0
			} else {
				p.time = total
			}
			p.draw()
			p.setPlaying(false)
			if p.onComplete != nil {
				p.onComplete()
			}
			return
		}
	} else {
		p.time -= dt
		if p.time <= 0 {
			p.time = 0
			p.draw()
			p.setPlaying(false)
			return
		}
	}
	p.draw()
}

// nextCycle 进入下一次重复，越界的时间折算进新周期
func (p *playhead) nextCycle(total float64) {
	if p.repeatLeft > 0 {
		p.repeatLeft--
	}
	if p.yoyo {
		p.yoyoBack = !p.yoyoBack
		if p.time > total {
			p.time = total - (p.time - total)
		} else if p.time < 0 {
			p.time = -p.time
		}
		p.time = utils.Clamp01(p.time/total) * total
		return
	}
	p.time = math.Mod(p.time, total)
}
