package catalog

import "github.com/jiten-dev/jiten/internal/models"

// seedCategories returns the built-in glossary definition. Categories and
// terms are listed in display order; ids must stay unique across the file.
func seedCategories() []models.Category {
	return []models.Category{
		{
			Name: "javascript",
			Terms: []models.Term{
				{
					ID:             "js-closure",
					Name:           "closure",
					LocalizedLabel: "クロージャ",
					Description:    "関数が定義されたスコープの変数を、関数の実行後も参照し続ける仕組み。コールバックやイベントハンドラで外側の状態を保持するために使われる。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"scope", "function"},
					Example: `function counter() {
  let count = 0;
  return function () {
    count += 1;
    return count;
  };
}
const next = counter();
next(); // 1
next(); // 2`,
					UseCases:         []string{"カウンターなど状態を持つ関数の作成", "プライベート変数の実現", "イベントハンドラへの状態の受け渡し"},
					RelatedTermNames: []string{"hoisting", "spread operator", "hooks"},
				},
				{
					ID:             "js-hoisting",
					Name:           "hoisting",
					LocalizedLabel: "巻き上げ",
					Description:    "var宣言やfunction宣言がスコープの先頭に移動したかのように扱われる挙動。letとconstはTDZ（Temporal Dead Zone）により宣言前アクセスがエラーになる。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"scope", "execution"},
					Example: `console.log(a); // undefined（エラーにならない）
var a = 1;

console.log(b); // ReferenceError
let b = 2;`,
					UseCases:         []string{"varとlet/constの挙動の違いの理解", "宣言前参照バグの調査"},
					RelatedTermNames: []string{"closure"},
				},
				{
					ID:             "js-promise",
					Name:           "Promise",
					LocalizedLabel: "プロミス",
					Description:    "非同期処理の完了または失敗を表すオブジェクト。then/catchの連鎖、またはasync/awaitで結果を受け取る。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"async", "error-handling"},
					Example: `fetch("/api/terms")
  .then((res) => res.json())
  .then((data) => console.log(data.total))
  .catch((err) => console.error(err));`,
					UseCases:         []string{"API呼び出しの結果処理", "複数の非同期処理の合成（Promise.all）", "タイムアウト処理"},
					RelatedTermNames: []string{"async/await", "event loop"},
				},
				{
					ID:             "js-async-await",
					Name:           "async/await",
					LocalizedLabel: "非同期関数",
					Description:    "Promiseを同期処理のような見た目で書ける構文。async関数は常にPromiseを返し、awaitはPromiseの解決を待つ。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"async", "syntax"},
					Example: `async function loadTerm(id) {
  const res = await fetch("/api/terms/" + id);
  if (!res.ok) throw new Error("not found");
  return res.json();
}`,
					UseCases:         []string{"直列の非同期処理の記述", "try/catchによる非同期エラー処理"},
					RelatedTermNames: []string{"Promise", "event loop"},
				},
				{
					ID:             "js-event-loop",
					Name:           "event loop",
					LocalizedLabel: "イベントループ",
					Description:    "コールスタックが空になるたびにタスクキューから次の処理を取り出して実行する、JavaScript実行モデルの中核。マイクロタスク（Promise）はマクロタスク（setTimeout）より先に処理される。",
					Difficulty:     models.DifficultyAdvanced,
					Tags:           []string{"async", "runtime"},
					Example: `console.log("start");
setTimeout(() => console.log("timeout"), 0);
Promise.resolve().then(() => console.log("promise"));
console.log("end");
// start → end → promise → timeout`,
					UseCases:         []string{"実行順序の理解とデバッグ", "UIブロッキングの回避"},
					RelatedTermNames: []string{"Promise", "EventEmitter"},
				},
				{
					ID:             "js-prototype",
					Name:           "prototype chain",
					LocalizedLabel: "プロトタイプチェーン",
					Description:    "オブジェクトがプロパティを自身に持たない場合、プロトタイプをたどって探索する継承の仕組み。class構文もこのチェーンの糖衣構文にすぎない。",
					Difficulty:     models.DifficultyAdvanced,
					Tags:           []string{"object", "inheritance"},
					Example: `const animal = { speak() { return "..."; } };
const dog = Object.create(animal);
dog.speak(); // プロトタイプ経由で "..." を返す`,
					UseCases:         []string{"継承関係の設計", "組み込みオブジェクトの拡張の理解"},
					RelatedTermNames: []string{"closure"},
				},
				{
					ID:             "js-destructuring",
					Name:           "destructuring",
					LocalizedLabel: "分割代入",
					Description:    "配列やオブジェクトから値を取り出して個別の変数に代入する構文。関数の引数でもそのまま使える。",
					Difficulty:     models.DifficultyBeginner,
					Tags:           []string{"syntax", "es2015"},
					Example: `const { name, tags = [] } = term;
const [first, ...rest] = items;`,
					UseCases:         []string{"APIレスポンスから必要な値の抽出", "関数オプション引数の展開"},
					RelatedTermNames: []string{"spread operator"},
				},
				{
					ID:             "js-spread",
					Name:           "spread operator",
					LocalizedLabel: "スプレッド構文",
					Description:    "配列やオブジェクトを展開する構文。コピーやマージを宣言的に書けるため、イミュータブルな更新の基本となる。",
					Difficulty:     models.DifficultyBeginner,
					Tags:           []string{"syntax", "es2015"},
					Example: `const merged = { ...defaults, ...overrides };
const copy = [...items];`,
					UseCases:         []string{"配列・オブジェクトの浅いコピー", "設定オブジェクトのマージ", "可変長引数の受け渡し"},
					RelatedTermNames: []string{"destructuring"},
				},
			},
		},
		{
			Name: "typescript",
			Terms: []models.Term{
				{
					ID:             "ts-generics",
					Name:           "generics",
					LocalizedLabel: "ジェネリクス",
					Description:    "型をパラメータ化して、複数の型で再利用できる関数や型を定義する仕組み。型引数Tは呼び出し側の値から推論される。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"type-system", "reuse"},
					Example: `function first<T>(items: T[]): T | undefined {
  return items[0];
}
const n = first([1, 2, 3]); // number | undefined`,
					UseCases:         []string{"型安全なコレクション操作", "APIクライアントの共通化"},
					RelatedTermNames: []string{"utility types", "interface"},
				},
				{
					ID:             "ts-union-type",
					Name:           "union type",
					LocalizedLabel: "ユニオン型",
					Description:    "複数の型のいずれかを取ることを表す型。文字列リテラルのユニオンはenumの軽量な代替としてよく使われる。",
					Difficulty:     models.DifficultyBeginner,
					Tags:           []string{"type-system"},
					Example: `type Difficulty = "beginner" | "intermediate" | "advanced";
let d: Difficulty = "beginner";`,
					UseCases:         []string{"取りうる値の限定", "状態の型表現"},
					RelatedTermNames: []string{"type narrowing", "type guard"},
				},
				{
					ID:             "ts-type-narrowing",
					Name:           "type narrowing",
					LocalizedLabel: "型の絞り込み",
					Description:    "typeofやin、比較などの制御フローをコンパイラが解析し、ブロック内での型を狭める仕組み。ユニオン型と組み合わせて使う。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"type-system", "control-flow"},
					Example: `function format(v: string | number): string {
  if (typeof v === "number") {
    return v.toFixed(2); // ここではnumber
  }
  return v.trim(); // ここではstring
}`,
					UseCases:         []string{"ユニオン型の安全な分岐処理"},
					RelatedTermNames: []string{"union type", "type guard"},
				},
				{
					ID:             "ts-type-guard",
					Name:           "type guard",
					LocalizedLabel: "型ガード",
					Description:    "値が特定の型であることを判定するユーザー定義関数。戻り値の型注釈 v is T により、呼び出し側で絞り込みが効く。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"type-system", "control-flow"},
					Example: `interface Term { id: string; name: string }
function isTerm(v: unknown): v is Term {
  return typeof v === "object" && v !== null && "id" in v;
}`,
					UseCases:         []string{"外部データのバリデーション", "unknown型の安全な取り扱い"},
					RelatedTermNames: []string{"type narrowing", "union type"},
				},
				{
					ID:             "ts-utility-types",
					Name:           "utility types",
					LocalizedLabel: "ユーティリティ型",
					Description:    "Partial、Pick、Omit、Recordなど、既存の型から新しい型を導出する組み込み型群。型の重複定義を避けるための基本道具。",
					Difficulty:     models.DifficultyAdvanced,
					Tags:           []string{"type-system", "reuse"},
					Example: `type TermPatch = Partial<Pick<Term, "description" | "tags">>;
type CountByID = Record<string, number>;`,
					UseCases:         []string{"更新用DTOの導出", "レスポンス型の部分抽出"},
					RelatedTermNames: []string{"generics", "mapped types"},
				},
				{
					ID:             "ts-mapped-types",
					Name:           "mapped types",
					LocalizedLabel: "マップ型",
					Description:    "keyofで得たキー集合を走査して各プロパティを変換する型。ユーティリティ型の多くはマップ型として実装されている。",
					Difficulty:     models.DifficultyAdvanced,
					Tags:           []string{"type-system"},
					Example: `type ReadonlyTerm = { readonly [K in keyof Term]: Term[K] };`,
					UseCases:         []string{"既存型の一括変換", "フォーム状態型の自動生成"},
					RelatedTermNames: []string{"utility types", "generics"},
				},
				{
					ID:             "ts-interface",
					Name:           "interface",
					LocalizedLabel: "インターフェース",
					Description:    "オブジェクトの形を宣言する構文。TypeScriptは構造的型付けのため、宣言と無関係でも形が一致すれば代入できる。",
					Difficulty:     models.DifficultyBeginner,
					Tags:           []string{"type-system", "contract"},
					Example: `interface CategoryInfo {
  id: string;
  count: number;
  displayName: string;
}`,
					UseCases:         []string{"APIレスポンス型の宣言", "実装契約の明示"},
					RelatedTermNames: []string{"generics", "union type", "duck typing"},
				},
			},
		},
		{
			Name: "react",
			Terms: []models.Term{
				{
					ID:             "react-jsx",
					Name:           "JSX",
					LocalizedLabel: "JSX記法",
					Description:    "JavaScriptの中にHTMLに似た構文でUIを記述する拡張記法。ビルド時にReact.createElement呼び出しへ変換される。",
					Difficulty:     models.DifficultyBeginner,
					Tags:           []string{"rendering", "syntax"},
					Example: `function Badge({ label }) {
  return <span className="badge">{label}</span>;
}`,
					UseCases:         []string{"コンポーネントのUI定義", "条件付きレンダリング"},
					RelatedTermNames: []string{"virtual DOM", "component"},
				},
				{
					ID:             "react-component",
					Name:           "component",
					LocalizedLabel: "コンポーネント",
					Description:    "UIを構成する独立した部品。propsを受け取りJSXを返す関数として定義するのが現在の標準。",
					Difficulty:     models.DifficultyBeginner,
					Tags:           []string{"rendering", "architecture"},
					Example: `function TermCard({ term }) {
  return (
    <article>
      <h2>{term.name}</h2>
      <p>{term.description}</p>
    </article>
  );
}`,
					UseCases:         []string{"UIの分割と再利用", "デザインシステムの構築"},
					RelatedTermNames: []string{"JSX", "props", "hooks"},
				},
				{
					ID:             "react-props",
					Name:           "props",
					LocalizedLabel: "プロパティ",
					Description:    "親コンポーネントから子へ渡される読み取り専用の入力。子がpropsを書き換えることはできず、データは常に一方向に流れる。",
					Difficulty:     models.DifficultyBeginner,
					Tags:           []string{"data-flow"},
					Example: `<TermCard term={term} highlighted={true} />`,
					UseCases:         []string{"コンポーネント間のデータ受け渡し", "表示のカスタマイズ"},
					RelatedTermNames: []string{"component", "state"},
				},
				{
					ID:             "react-state",
					Name:           "state",
					LocalizedLabel: "ステート",
					Description:    "コンポーネントが保持する可変データ。更新すると再レンダリングが走る。propsと違い、コンポーネント自身が所有する。",
					Difficulty:     models.DifficultyBeginner,
					Tags:           []string{"data-flow"},
					Example: `const [query, setQuery] = useState("");
<input value={query} onChange={(e) => setQuery(e.target.value)} />`,
					UseCases:         []string{"フォーム入力の管理", "表示切り替えフラグ"},
					RelatedTermNames: []string{"hooks", "props"},
				},
				{
					ID:             "react-hooks",
					Name:           "hooks",
					LocalizedLabel: "フック",
					Description:    "関数コンポーネントに状態やライフサイクルを持ち込む仕組み。useで始まる関数はトップレベルで同じ順序で呼ぶ必要がある。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"state-management", "function"},
					Example: `function useTerms(category) {
  const [terms, setTerms] = useState([]);
  useEffect(() => {
    fetch("/api/terms?category=" + category)
      .then((r) => r.json())
      .then((d) => setTerms(d.terms));
  }, [category]);
  return terms;
}`,
					UseCases:         []string{"ロジックのカスタムフック化", "状態と副作用の併用"},
					RelatedTermNames: []string{"state", "useEffect"},
				},
				{
					ID:             "react-use-effect",
					Name:           "useEffect",
					LocalizedLabel: "副作用フック",
					Description:    "レンダリング後に副作用（データ取得、購読、DOM操作）を実行するフック。依存配列で再実行条件を制御し、クリーンアップ関数で後始末する。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"lifecycle", "side-effect"},
					Example: `useEffect(() => {
  const id = setInterval(tick, 1000);
  return () => clearInterval(id); // クリーンアップ
}, []);`,
					UseCases:         []string{"マウント時のデータ取得", "イベント購読と解除"},
					RelatedTermNames: []string{"hooks", "component"},
				},
				{
					ID:             "react-virtual-dom",
					Name:           "virtual DOM",
					LocalizedLabel: "仮想DOM",
					Description:    "実DOMの軽量なコピーをメモリ上に保持し、前回との差分だけを実DOMへ適用する描画戦略。差分計算はreconciliationと呼ばれる。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"rendering", "performance"},
					Example: `// setStateのたびに全置換ではなく、変更のあったノードだけが更新される`,
					UseCases:         []string{"描画パフォーマンスの理解", "keyプロパティの適切な設計"},
					RelatedTermNames: []string{"JSX", "memoization"},
				},
				{
					ID:             "react-memo",
					Name:           "memoization",
					LocalizedLabel: "メモ化",
					Description:    "計算結果やコンポーネントの出力をキャッシュし、入力が変わらない限り再計算を省く最適化。React.memo、useMemo、useCallbackが代表。",
					Difficulty:     models.DifficultyAdvanced,
					Tags:           []string{"performance"},
					Example: `const sorted = useMemo(
  () => [...terms].sort(byName),
  [terms]
);`,
					UseCases:         []string{"重い計算の再実行抑制", "子コンポーネントの不要な再描画防止"},
					RelatedTermNames: []string{"virtual DOM", "hooks"},
				},
			},
		},
		{
			Name: "nodejs",
			Terms: []models.Term{
				{
					ID:             "node-event-emitter",
					Name:           "EventEmitter",
					LocalizedLabel: "イベントエミッタ",
					Description:    "名前付きイベントの発火と購読を提供するNode.jsの基本クラス。StreamやHTTPサーバーなど主要APIの土台になっている。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"event", "pattern"},
					Example: `const { EventEmitter } = require("events");
const bus = new EventEmitter();
bus.on("loaded", (n) => console.log(n, "terms"));
bus.emit("loaded", 58);`,
					UseCases:         []string{"コンポーネント間の疎結合な通知", "独自イベントAPIの設計"},
					RelatedTermNames: []string{"stream", "event loop"},
				},
				{
					ID:             "node-stream",
					Name:           "stream",
					LocalizedLabel: "ストリーム",
					Description:    "データを小さな塊で逐次処理する抽象。ファイル全体をメモリに載せずに読み書きでき、pipeで変換を連結できる。",
					Difficulty:     models.DifficultyAdvanced,
					Tags:           []string{"io", "performance"},
					Example: `const fs = require("fs");
fs.createReadStream("terms.json")
  .pipe(process.stdout);`,
					UseCases:         []string{"大きなファイルの転送", "逐次変換パイプラインの構築"},
					RelatedTermNames: []string{"Buffer", "EventEmitter"},
				},
				{
					ID:             "node-buffer",
					Name:           "Buffer",
					LocalizedLabel: "バッファ",
					Description:    "生のバイナリデータを扱う固定長のメモリ領域。文字列との相互変換時はエンコーディング指定が必須になる。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"io", "binary"},
					Example: `const buf = Buffer.from("用語集", "utf8");
console.log(buf.length); // バイト数（文字数ではない）`,
					UseCases:         []string{"バイナリプロトコルの実装", "ファイル内容の加工"},
					RelatedTermNames: []string{"stream"},
				},
				{
					ID:             "node-middleware",
					Name:           "middleware",
					LocalizedLabel: "ミドルウェア",
					Description:    "リクエスト処理の前後に割り込む関数の連鎖。ロギング、認証、圧縮などの横断的関心事をハンドラ本体から分離する。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"http", "pattern"},
					Example: `app.use((req, res, next) => {
  console.log(req.method, req.url);
  next();
});`,
					UseCases:         []string{"アクセスログの記録", "共通ヘッダの付与", "レートリミット"},
					RelatedTermNames: []string{"REST API", "HTTP"},
				},
				{
					ID:             "node-module-system",
					Name:           "module system",
					LocalizedLabel: "モジュールシステム",
					Description:    "コードをファイル単位で分割・公開する仕組み。CommonJS（require）とES Modules（import）が併存し、相互運用には注意が要る。",
					Difficulty:     models.DifficultyBeginner,
					Tags:           []string{"module", "architecture"},
					Example: `// CommonJS
const { loadCatalog } = require("./catalog");
// ES Modules
import { loadCatalog } from "./catalog.js";`,
					UseCases:         []string{"コードの分割と再利用", "公開APIの限定"},
					RelatedTermNames: []string{"npm"},
				},
				{
					ID:             "node-npm",
					Name:           "npm",
					LocalizedLabel: "パッケージ管理",
					Description:    "Node.jsの標準パッケージマネージャ。package.jsonが依存関係とスクリプトを宣言し、lockファイルが再現可能なインストールを保証する。",
					Difficulty:     models.DifficultyBeginner,
					Tags:           []string{"tooling", "module"},
					Example: `npm install express
npm run dev`,
					UseCases:         []string{"外部ライブラリの導入", "ビルド・テストタスクの定義"},
					RelatedTermNames: []string{"module system"},
				},
				{
					ID:             "node-cluster",
					Name:           "cluster",
					LocalizedLabel: "クラスタ",
					Description:    "1プロセス1スレッドのNode.jsでCPUコアを使い切るため、同じサーバーを複数プロセスで起動してポートを共有する仕組み。",
					Difficulty:     models.DifficultyAdvanced,
					Tags:           []string{"process", "performance"},
					Example: `const cluster = require("cluster");
if (cluster.isPrimary) {
  for (let i = 0; i < 4; i++) cluster.fork();
} else {
  startServer();
}`,
					UseCases:         []string{"マルチコアでのスループット向上", "ワーカーの自動再起動"},
					RelatedTermNames: []string{"event loop", "stream"},
				},
			},
		},
		{
			Name: "web",
			Terms: []models.Term{
				{
					ID:             "web-http",
					Name:           "HTTP",
					LocalizedLabel: "HTTP通信",
					Description:    "Webの基盤となるリクエスト・レスポンス型プロトコル。メソッド、ヘッダ、ステータスコードの3要素を押さえることが出発点になる。",
					Difficulty:     models.DifficultyBeginner,
					Tags:           []string{"protocol", "network"},
					Example: `GET /api/terms?limit=10 HTTP/1.1
Host: localhost:8080
Accept: application/json`,
					UseCases:         []string{"API設計の基礎理解", "通信内容のデバッグ"},
					RelatedTermNames: []string{"REST API", "status code"},
				},
				{
					ID:             "web-rest",
					Name:           "REST API",
					LocalizedLabel: "REST API",
					Description:    "リソースをURLで表し、HTTPメソッドで操作を表現するAPI設計様式。GETは安全・冪等であることが期待される。",
					Difficulty:     models.DifficultyBeginner,
					Tags:           []string{"protocol", "architecture", "api"},
					Example: `GET    /api/terms      一覧取得
GET    /api/terms/:id  個別取得
POST   /api/terms      作成（本サービスでは未提供）`,
					UseCases:         []string{"外部公開APIの設計", "フロントエンドとの契約定義"},
					RelatedTermNames: []string{"HTTP", "status code", "middleware"},
				},
				{
					ID:             "web-cors",
					Name:           "CORS",
					LocalizedLabel: "オリジン間リソース共有",
					Description:    "ブラウザの同一オリジンポリシーを緩和し、別オリジンからのリクエストを許可する仕組み。サーバーがAccess-Control-Allow-Originヘッダで許可範囲を宣言する。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"security", "network"},
					Example: `Access-Control-Allow-Origin: *
Access-Control-Allow-Methods: GET, OPTIONS`,
					UseCases:         []string{"SPAからのAPI呼び出しの許可", "プリフライトエラーの解消"},
					RelatedTermNames: []string{"HTTP"},
				},
				{
					ID:             "web-status-code",
					Name:           "status code",
					LocalizedLabel: "ステータスコード",
					Description:    "レスポンスの結果を表す3桁の数値。2xxは成功、4xxはクライアント起因、5xxはサーバー起因のエラーを示す。",
					Difficulty:     models.DifficultyBeginner,
					Tags:           []string{"protocol", "http"},
					Example: `200 OK        正常
404 Not Found リソースなし
429 Too Many Requests レート制限超過`,
					UseCases:         []string{"エラーハンドリングの分岐", "API契約の明確化"},
					RelatedTermNames: []string{"HTTP", "REST API"},
				},
				{
					ID:             "web-cookie",
					Name:           "cookie",
					LocalizedLabel: "クッキー",
					Description:    "ブラウザに保存されリクエストごとに自動送信される小さなデータ。HttpOnly、Secure、SameSite属性で送信条件を制御する。",
					Difficulty:     models.DifficultyBeginner,
					Tags:           []string{"state", "security"},
					Example: `Set-Cookie: session=abc123; HttpOnly; Secure; SameSite=Lax`,
					UseCases:         []string{"セッション維持", "ユーザー設定の保存"},
					RelatedTermNames: []string{"HTTP", "CORS"},
				},
				{
					ID:             "web-websocket",
					Name:           "WebSocket",
					LocalizedLabel: "ウェブソケット",
					Description:    "HTTPからアップグレードして確立する双方向の常時接続。サーバープッシュが必要なリアルタイム機能で使う。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"protocol", "realtime"},
					Example: `const ws = new WebSocket("wss://example.com/live");
ws.onmessage = (ev) => console.log(ev.data);`,
					UseCases:         []string{"チャット・通知機能", "ダッシュボードのライブ更新"},
					RelatedTermNames: []string{"HTTP", "EventEmitter", "Socket.IO"},
				},
				{
					ID:             "web-cache",
					Name:           "cache",
					LocalizedLabel: "キャッシュ",
					Description:    "一度取得した結果を保存して再利用する仕組み。HTTPではCache-ControlとETagで鮮度と再検証を制御する。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"performance", "http"},
					Example: `Cache-Control: max-age=3600
ETag: "v58"
If-None-Match: "v58" → 304 Not Modified`,
					UseCases:         []string{"レスポンスの高速化", "帯域とサーバー負荷の削減"},
					RelatedTermNames: []string{"HTTP", "memoization"},
				},
			},
		},
		{
			Name: "database",
			Terms: []models.Term{
				{
					ID:             "db-index",
					Name:           "index",
					LocalizedLabel: "インデックス",
					Description:    "検索を高速化するためにテーブルとは別に維持される探索構造。多くはB-Treeで、書き込みコストと引き換えに読み取りを速くする。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"performance", "query"},
					Example: `CREATE INDEX idx_terms_category ON terms (category, difficulty);`,
					UseCases:         []string{"WHERE句・JOIN条件の高速化", "一意制約の実現"},
					RelatedTermNames: []string{"join", "transaction"},
				},
				{
					ID:             "db-transaction",
					Name:           "transaction",
					LocalizedLabel: "トランザクション",
					Description:    "複数の操作をまとめて全部成功か全部失敗にする実行単位。COMMITで確定、ROLLBACKで取り消す。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"consistency", "acid"},
					Example: `BEGIN;
UPDATE accounts SET balance = balance - 100 WHERE id = 1;
UPDATE accounts SET balance = balance + 100 WHERE id = 2;
COMMIT;`,
					UseCases:         []string{"送金など不可分な更新", "一括登録の整合性確保"},
					RelatedTermNames: []string{"ACID"},
				},
				{
					ID:             "db-normalization",
					Name:           "normalization",
					LocalizedLabel: "正規化",
					Description:    "データの重複を排除してテーブルを分割する設計手法。更新異常を防ぐ一方、読み取りではJOINが増えるため意図的な非正規化も選択肢になる。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"schema", "design"},
					Example: `-- 非正規形: terms(name, category_name, category_label)
-- 正規化後: terms(name, category_id) + categories(id, label)`,
					UseCases:         []string{"スキーマ設計", "更新異常の防止"},
					RelatedTermNames: []string{"join"},
				},
				{
					ID:             "db-join",
					Name:           "join",
					LocalizedLabel: "結合",
					Description:    "複数テーブルの行をキーで突き合わせて1つの結果にする操作。INNERは両方に存在する行のみ、LEFTは左側の全行を返す。",
					Difficulty:     models.DifficultyBeginner,
					Tags:           []string{"query", "sql"},
					Example: `SELECT t.name, c.label
FROM terms t
JOIN categories c ON c.id = t.category_id;`,
					UseCases:         []string{"正規化されたデータの取得", "集計レポートの作成"},
					RelatedTermNames: []string{"normalization", "index"},
				},
				{
					ID:             "db-acid",
					Name:           "ACID",
					LocalizedLabel: "ACID特性",
					Description:    "トランザクションが満たすべき4性質（原子性・一貫性・分離性・永続性）。分離性はレベルで緩和でき、性能との交換になる。",
					Difficulty:     models.DifficultyAdvanced,
					Tags:           []string{"consistency", "theory"},
					Example: `-- READ COMMITTED と SERIALIZABLE では並行実行時の見え方が変わる`,
					UseCases:         []string{"分離レベルの選定", "障害時のデータ保証の説明"},
					RelatedTermNames: []string{"transaction"},
				},
				{
					ID:             "db-nosql",
					Name:           "NoSQL",
					LocalizedLabel: "非リレーショナルDB",
					Description:    "固定スキーマとSQLに依らないデータベースの総称。ドキュメント型、キーバリュー型、グラフ型などがあり、スケールアウトを優先する設計が多い。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"schema", "scalability"},
					Example: `db.terms.find({ tags: "async", difficulty: "intermediate" })`,
					UseCases:         []string{"スキーマが流動的なデータの保存", "大規模な読み書きの分散"},
					RelatedTermNames: []string{"normalization", "cache"},
				},
				{
					ID:             "db-migration",
					Name:           "migration",
					LocalizedLabel: "マイグレーション",
					Description:    "スキーマ変更をバージョン管理された差分スクリプトとして適用する手法。up/downの対で書き、環境間の差異をなくす。",
					Difficulty:     models.DifficultyBeginner,
					Tags:           []string{"schema", "tooling"},
					Example: `-- 0003_add_tags.up.sql
ALTER TABLE terms ADD COLUMN tags text[];`,
					UseCases:         []string{"本番スキーマの安全な変更", "CI環境の再現"},
					RelatedTermNames: []string{"normalization", "commit"},
				},
			},
		},
		{
			Name: "git",
			Terms: []models.Term{
				{
					ID:             "git-commit",
					Name:           "commit",
					LocalizedLabel: "コミット",
					Description:    "ステージングされた変更のスナップショットを履歴に記録する操作。メッセージには変更の意図を書く。",
					Difficulty:     models.DifficultyBeginner,
					Tags:           []string{"vcs", "history"},
					Example: `git add internal/catalog/data.go
git commit -m "Add database terms to the catalog"`,
					UseCases:         []string{"作業単位の記録", "変更履歴の追跡"},
					RelatedTermNames: []string{"branch", "merge"},
				},
				{
					ID:             "git-branch",
					Name:           "branch",
					LocalizedLabel: "ブランチ",
					Description:    "コミットを指す可動ポインタ。履歴を分岐させ、機能開発を本流から隔離する。作成は軽量でコピーは発生しない。",
					Difficulty:     models.DifficultyBeginner,
					Tags:           []string{"vcs", "workflow"},
					Example: `git switch -c feature/random-endpoint
git switch main`,
					UseCases:         []string{"機能ごとの並行開発", "リリースラインの維持"},
					RelatedTermNames: []string{"commit", "merge", "pull request"},
				},
				{
					ID:             "git-merge",
					Name:           "merge",
					LocalizedLabel: "マージ",
					Description:    "分岐した履歴を合流させる操作。共通祖先からの差分を三方向で統合し、重なった変更はconflictとして手動解決を求める。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"vcs", "workflow"},
					Example: `git switch main
git merge feature/random-endpoint`,
					UseCases:         []string{"機能ブランチの取り込み", "リリースブランチへの反映"},
					RelatedTermNames: []string{"branch", "conflict", "rebase"},
				},
				{
					ID:             "git-rebase",
					Name:           "rebase",
					LocalizedLabel: "リベース",
					Description:    "ブランチの付け根を別のコミットに付け替え、履歴を一直線にする操作。コミットは作り直されるため、共有済みブランチでは避ける。",
					Difficulty:     models.DifficultyAdvanced,
					Tags:           []string{"vcs", "history"},
					Example: `git switch feature/random-endpoint
git rebase main`,
					UseCases:         []string{"取り込み前の履歴整理", "マージコミットのない履歴の維持"},
					RelatedTermNames: []string{"merge", "commit", "conflict"},
				},
				{
					ID:             "git-stash",
					Name:           "stash",
					LocalizedLabel: "スタッシュ",
					Description:    "未コミットの変更を退避してワーキングツリーをきれいにする操作。ブランチ切り替えの前の一時置き場として使う。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"vcs", "workflow"},
					Example: `git stash push -m "wip: chart handler"
git stash pop`,
					UseCases:         []string{"急な割り込み作業への切り替え", "中途半端な変更の退避"},
					RelatedTermNames: []string{"branch", "commit"},
				},
				{
					ID:             "git-conflict",
					Name:           "conflict",
					LocalizedLabel: "競合",
					Description:    "同じ箇所への異なる変更をGitが自動統合できない状態。マーカーで示された両方の変更から正しい形を選んで解決する。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"vcs", "workflow"},
					Example: `<<<<<<< HEAD
limit := 50
=======
limit := 100
>>>>>>> feature/larger-pages`,
					UseCases:         []string{"マージ・リベース時の統合判断"},
					RelatedTermNames: []string{"merge", "rebase"},
				},
				{
					ID:             "git-pull-request",
					Name:           "pull request",
					LocalizedLabel: "プルリクエスト",
					Description:    "ブランチの変更を本流へ取り込む依頼。レビュー、CI、議論を経てマージされる。変更の単位を小さく保つほどレビューは速い。",
					Difficulty:     models.DifficultyBeginner,
					Tags:           []string{"workflow", "collaboration"},
					Example: `# GitHub上で base: main ← compare: feature/random-endpoint を作成`,
					UseCases:         []string{"コードレビューの実施", "変更理由の記録"},
					RelatedTermNames: []string{"branch", "merge"},
				},
			},
		},
		{
			Name: "algorithm",
			Terms: []models.Term{
				{
					ID:             "algo-big-o",
					Name:           "Big O notation",
					LocalizedLabel: "計算量記法",
					Description:    "入力サイズnに対する処理時間・メモリの増え方を漸近的に表す記法。O(1)、O(log n)、O(n)、O(n^2)の感覚を持つことが第一歩。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"complexity", "theory"},
					Example: `// 線形探索は O(n)、二分探索は O(log n)
for (const t of terms) {
  if (t.id === id) return t;
}`,
					UseCases:         []string{"実装方式の比較", "性能劣化の原因説明"},
					RelatedTermNames: []string{"binary search", "sorting"},
				},
				{
					ID:             "algo-recursion",
					Name:           "recursion",
					LocalizedLabel: "再帰",
					Description:    "関数が自分自身を呼び出して問題を小さく分割する技法。基底条件（base case）を忘れるとスタックオーバーフローする。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"function", "technique"},
					Example: `function depth(node) {
  if (!node.children.length) return 1; // 基底条件
  return 1 + Math.max(...node.children.map(depth));
}`,
					UseCases:         []string{"木構造の走査", "分割統治アルゴリズムの実装"},
					RelatedTermNames: []string{"memoization", "dynamic programming"},
				},
				{
					ID:             "algo-binary-search",
					Name:           "binary search",
					LocalizedLabel: "二分探索",
					Description:    "ソート済み列の中央と比較して探索範囲を半分に絞り込む手法。O(log n)で目的の値、または挿入位置を見つける。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"search", "technique"},
					Example: `let lo = 0, hi = items.length;
while (lo < hi) {
  const mid = (lo + hi) >> 1;
  if (items[mid] < target) lo = mid + 1;
  else hi = mid;
}`,
					UseCases:         []string{"ソート済みデータの高速検索", "境界値の特定"},
					RelatedTermNames: []string{"sorting", "Big O notation"},
				},
				{
					ID:             "algo-hash-table",
					Name:           "hash table",
					LocalizedLabel: "ハッシュテーブル",
					Description:    "キーをハッシュ関数で添字に変換して平均O(1)で出し入れする構造。JavaScriptのMapやGoのmapの実体。衝突処理の方式で性質が変わる。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"data-structure"},
					Example: `const byID = new Map(terms.map((t) => [t.id, t]));
byID.get("js-closure");`,
					UseCases:         []string{"idによる即時参照", "重複判定・カウント"},
					RelatedTermNames: []string{"Big O notation"},
				},
				{
					ID:             "algo-sort",
					Name:           "sorting",
					LocalizedLabel: "ソート",
					Description:    "列を順序付けて並べ替える操作。比較ソートの下限はO(n log n)。等しい要素の相対順を保つソートは安定と呼ばれる。",
					Difficulty:     models.DifficultyBeginner,
					Tags:           []string{"technique", "order"},
					Example: `terms.sort((a, b) => a.name.localeCompare(b.name));`,
					UseCases:         []string{"表示順の制御", "二分探索の前処理"},
					RelatedTermNames: []string{"binary search", "Big O notation"},
				},
				{
					ID:             "algo-dp",
					Name:           "dynamic programming",
					LocalizedLabel: "動的計画法",
					Description:    "部分問題の解を表に記録して再利用し、指数的な再計算を避ける技法。再帰＋メモ化、またはボトムアップの表埋めで実装する。",
					Difficulty:     models.DifficultyAdvanced,
					Tags:           []string{"technique", "optimization"},
					Example: `const memo = new Map();
function fib(n) {
  if (n < 2) return n;
  if (!memo.has(n)) memo.set(n, fib(n - 1) + fib(n - 2));
  return memo.get(n);
}`,
					UseCases:         []string{"最適化問題の求解", "経路数・編集距離の計算"},
					RelatedTermNames: []string{"recursion", "memoization"},
				},
				{
					ID:             "algo-graph",
					Name:           "graph",
					LocalizedLabel: "グラフ",
					Description:    "頂点と辺で関係を表すデータ構造。依存関係、経路、ネットワークのモデル化に使い、探索はBFS/DFSが基本になる。",
					Difficulty:     models.DifficultyAdvanced,
					Tags:           []string{"data-structure", "theory"},
					Example: `const adjacency = {
  "build": ["test"],
  "test": ["deploy"],
  "deploy": []
};`,
					UseCases:         []string{"依存関係の解決", "最短経路の計算"},
					RelatedTermNames: []string{"recursion", "hash table"},
				},
			},
		},
	}
}
