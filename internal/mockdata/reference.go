package mockdata

// Fixed reference lists the generators draw from.
var (
	surnames = []string{
		"Li", "Wang", "Zhang", "Liu", "Chen", "Yang", "Zhao", "Huang", "Zhou", "Wu",
		"Xu", "Sun", "Hu", "Zhu", "Gao", "Lin", "He", "Guo", "Ma", "Luo",
	}

	givenNames = []string{
		"Wei", "Fang", "Na", "Xiuying", "Min", "Jing", "Li", "Qiang", "Lei", "Jun",
		"Yang", "Yong", "Yan", "Jie", "Juan", "Tao", "Ming", "Chao", "Xiulan", "Xia",
	}

	phonePrefixes = []string{
		"130", "131", "132", "133", "134", "135", "136", "137", "138", "139",
		"150", "151", "152", "153", "155", "156", "157", "158", "159",
		"186", "187", "188", "189",
	}

	locations = []string{
		"88 Jianguo Road, Chaoyang District, Beijing",
		"1266 West Nanjing Road, Jing'an District, Shanghai",
		"385 Tianhe Road, Tianhe District, Guangzhou",
		"7888 Shennan Avenue, Futian District, Shenzhen",
		"1 Hongxing Road Section 3, Jinjiang District, Chengdu",
		"19 West Lake Culture Square, Xihu District, Hangzhou",
		"8 Zhongshan North Road, Gulou District, Nanjing",
		"688 Jiefang Avenue, Jianghan District, Wuhan",
		"88 Nanguan Main Street, Beilin District, Xi'an",
		"18 Jiefangbei Pedestrian Street, Yuzhong District, Chongqing",
	}

	serviceTypes = []string{
		"Haircut", "Coloring", "Styling", "Manicure", "Pedicure", "Facial", "Massage", "Waxing",
	}

	paymentMethods = []string{
		"Alipay", "WeChat Pay", "UnionPay Card", "Cash", "Gift Card",
	}

	// staffNames is indexed by staff number minus one.
	staffNames = []string{
		"Xiaohong", "Xiaoming", "Xiaofang", "Xiaoli", "Xiaoqiang",
		"Xiaojie", "Xiaojuan", "Xiaohua", "Xiaoyan", "Xiaolong",
	}

	shopNames = []string{
		"Beauty Space Flagship", "Charm Fashion", "Radiant Look Studio", "Trendy Skin House",
		"Elegance Salon", "Shangmei Styling", "Belle Makeup", "Beauty Legend",
		"Infinite Charm", "Beautiful Life",
	}

	shopIntroductions = []string{
		"Quality hair and beauty services delivered by a professional team in a comfortable space.",
		"The flagship location offers the full range: haircuts, coloring, styling, nails, foot care and facials.",
		"Modern equipment and skilled stylists make this a one-stop place to relax and refresh.",
		"Personalised beauty plans built around each customer's needs.",
		"Experienced stylists who keep up with the latest international techniques.",
	}
)
