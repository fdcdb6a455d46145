package feed

import (
	"context"
	"sync"

	"app/internal/domain/model"

	"github.com/go-redis/redis/v8"
)

// 変更シグナル用のチャンネル。ペイロードは見ない（再読のきっかけだけ）。
const ordersChannel = "orders:changed"

// ライブフィードを確立できなかった
type SubscriptionError struct {
	Cause error
}

func (e *SubscriptionError) Error() string {
	return "orders feed: subscribe failed: " + e.Cause.Error()
}

func (e *SubscriptionError) Unwrap() error {
	return e.Cause
}

// 現在の全注文スナップショットを読む約束
type SnapshotSource interface {
	ListAll(ctx context.Context) ([]model.Order, error)
}

// OrderFeed は注文コレクションのライブ購読。
// 書き込み側がNotifyChangedを叩き、購読側はそのたびに
// 全件スナップショットを読み直して受け取る。
type OrderFeed struct {
	client *redis.Client
	source SnapshotSource
}

func NewOrderFeed(client *redis.Client, source SnapshotSource) *OrderFeed {
	return &OrderFeed{client: client, source: source}
}

// 注文が変わったことを購読者へ知らせる
func (f *OrderFeed) NotifyChanged(ctx context.Context) error {
	return f.client.Publish(ctx, ordersChannel, "1").Err()
}

// Subscribe は登録直後に現在のスナップショットを1回届け、
// 以後は変更シグナルのたびに読み直して届ける。
// 返す解除関数は何度呼んでも安全で、初回配信前に呼んでもよい。
func (f *OrderFeed) Subscribe(ctx context.Context, fn func([]model.Order)) (func(), error) {
	subCtx, cancel := context.WithCancel(ctx)

	pubsub := f.client.Subscribe(subCtx, ordersChannel)

	//購読確立の確認
	if _, err := pubsub.Receive(subCtx); err != nil {
		cancel()
		_ = pubsub.Close()
		return nil, &SubscriptionError{Cause: err}
	}

	//メッセージは「変更があった」の1bitに潰す。
	//処理が追いつかない間の連打は1回にまとまる。
	signals := make(chan struct{}, 1)
	go func() {
		defer close(signals)
		ch := pubsub.Channel()
		for {
			select {
			case <-subCtx.Done():
				return
			case _, ok := <-ch:
				if !ok {
					return
				}
				select {
				case signals <- struct{}{}:
				default:
				}
			}
		}
	}()

	go f.run(subCtx, signals, fn)

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			cancel()
			_ = pubsub.Close()
		})
	}
	return unsubscribe, nil
}

// run は初回スナップショットを届けてからシグナルごとに読み直す。
// fnの呼び出しはこのゴルーチン1本だけ＝重なって走らない。
func (f *OrderFeed) run(ctx context.Context, signals <-chan struct{}, fn func([]model.Order)) {
	f.deliver(ctx, fn)

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-signals:
			if !ok {
				return
			}
			f.deliver(ctx, fn)
		}
	}
}

// 読めなかった回はスキップ（次のシグナルで再読する）
func (f *OrderFeed) deliver(ctx context.Context, fn func([]model.Order)) {
	orders, err := f.source.ListAll(ctx)
	if err != nil {
		return
	}
	select {
	case <-ctx.Done():
	default:
		fn(orders)
	}
}
