package providers

// defaultEntries is the built-in recipient master. Declaration order is the
// resolve tie-break, so new entries go at the end of their section.
func defaultEntries() []Provider {
	return []Provider{
		// 大手キャリア
		{
			Key:        "KDDI",
			FullName:   "KDDI株式会社",
			PostalCode: "102-8460",
			Address:    "東京都千代田区飯田橋3丁目10番10号 ガーデンエアタワー",
			Department: "渉外・広報本部 法務部",
			Aliases:    []string{"au", "AU", "KDDI株式会社"},
		},
		{
			Key:        "ソフトバンク",
			FullName:   "ソフトバンク株式会社",
			PostalCode: "105-7529",
			Address:    "東京都港区海岸一丁目7番1号 東京ポートシティ竹芝オフィスタワー",
			Department: "法務本部",
			Aliases:    []string{"SoftBank", "SOFTBANK", "ソフトバンク株式会社"},
		},
		{
			Key:        "NTTドコモ",
			FullName:   "株式会社NTTドコモ",
			PostalCode: "100-6150",
			Address:    "東京都千代田区永田町2丁目11番1号 山王パークタワー",
			Department: "法務部",
			Aliases:    []string{"docomo", "ドコモ", "NTT docomo"},
		},

		// 固定回線系
		{
			Key:        "NTTコミュニケーションズ",
			FullName:   "NTTコミュニケーションズ株式会社",
			PostalCode: "100-8019",
			Address:    "東京都千代田区大手町2丁目3番1号 大手町プレイスウエストタワー",
			Department: "法務部",
			Aliases:    []string{"NTT Com", "OCN", "NTT Communications"},
		},
		{
			Key:        "NTT東日本",
			FullName:   "東日本電信電話株式会社",
			PostalCode: "163-8019",
			Address:    "東京都新宿区西新宿3丁目19番2号",
			Department: "法務部",
			Aliases:    []string{"NTT EAST", "フレッツ", "FLET'S"},
		},
		{
			Key:        "NTT西日本",
			FullName:   "西日本電信電話株式会社",
			PostalCode: "534-0024",
			Address:    "大阪府大阪市都島区東野田町4丁目15番82号",
			Department: "法務部",
			Aliases:    []string{"NTT WEST"},
		},

		// CATV・ケーブル系
		{
			Key:        "JCOM",
			FullName:   "JCOM株式会社",
			PostalCode: "100-0005",
			Address:    "東京都千代田区丸の内1丁目8番1号 丸の内トラストタワーN館",
			Department: "法務部",
			Aliases:    []string{"J:COM", "ジェイコム", "ジュピターテレコム"},
		},

		// ISP
		{
			Key:        "ビッグローブ",
			FullName:   "ビッグローブ株式会社",
			PostalCode: "140-0002",
			Address:    "東京都品川区東品川4丁目12番4号 品川シーサイドパークタワー",
			Department: "法務部",
			Aliases:    []string{"BIGLOBE", "biglobe"},
		},
		{
			Key:        "ニフティ",
			FullName:   "ニフティ株式会社",
			PostalCode: "160-0023",
			Address:    "東京都新宿区西新宿1丁目23番7号 新宿ファーストウエスト",
			Department: "法務部",
			Aliases:    []string{"@nifty", "NIFTY"},
		},
		{
			Key:        "ソニーネットワークコミュニケーションズ",
			FullName:   "ソニーネットワークコミュニケーションズ株式会社",
			PostalCode: "140-0002",
			Address:    "東京都品川区東品川4丁目12番3号 品川シーサイドTSタワー",
			Department: "法務部",
			Aliases:    []string{"So-net", "NURO", "ソネット"},
		},
		{
			Key:        "GMOインターネット",
			FullName:   "GMOインターネットグループ株式会社",
			PostalCode: "150-8512",
			Address:    "東京都渋谷区桜丘町26番1号 セルリアンタワー",
			Department: "法務部",
			Aliases:    []string{"GMO", "GMOとくとくBB", "お名前.com"},
		},
		{
			Key:        "インターリンク",
			FullName:   "株式会社インターリンク",
			PostalCode: "171-0022",
			Address:    "東京都豊島区南池袋2丁目49番7号 池袋パークビル",
			Aliases:    []string{"INTERLINK", "interlink"},
		},

		// IXP・接続事業者
		{
			Key:        "インターネットマルチフィード",
			FullName:   "インターネットマルチフィード株式会社",
			PostalCode: "100-0004",
			Address:    "東京都千代田区大手町1丁目3番2号 経団連会館",
			Aliases:    []string{"MFEED", "mfeed", "transix"},
		},
		{
			Key:        "アルテリア・ネットワークス",
			FullName:   "アルテリア・ネットワークス株式会社",
			PostalCode: "105-0001",
			Address:    "東京都港区虎ノ門4丁目1番1号 神谷町トラストタワー",
			Department: "法務部",
			Aliases:    []string{"ARTERIA", "UCOM", "アルテリア"},
		},

		// 電力系
		{
			Key:        "オプテージ",
			FullName:   "株式会社オプテージ",
			PostalCode: "540-8622",
			Address:    "大阪府大阪市中央区城見2丁目1番5号 オプテージビル",
			Department: "法務部",
			Aliases:    []string{"eo光", "eo", "OPTAGE", "ケイ・オプティコム"},
		},
		{
			Key:        "STNet",
			FullName:   "株式会社STNet",
			PostalCode: "760-0072",
			Address:    "香川県高松市花園町2丁目6番1号",
			Aliases:    []string{"ピカラ", "PIKARA"},
		},

		// その他
		{
			Key:        "楽天モバイル",
			FullName:   "楽天モバイル株式会社",
			PostalCode: "158-0094",
			Address:    "東京都世田谷区玉川1丁目14番1号 楽天クリムゾンハウス",
			Department: "法務部",
			Aliases:    []string{"Rakuten", "rakuten"},
		},
	}
}
